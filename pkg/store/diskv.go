package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/subtrack/pkg/item"
)

// HistoryFile is the name of the persisted history document inside the
// data directory.
const HistoryFile = "submission_history.json"

// Persistence defines the persistence contract for submission history.
type Persistence interface {
	// ReadHistory loads the whole history. A missing file is an empty
	// history, not an error.
	ReadHistory() (item.History, error)
	// WriteHistory overwrites the whole history.
	WriteHistory(h item.History) error
	// Path is the file backing the history.
	Path() string
	// Watch streams change notifications for the history file until ctx
	// is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: flatTransform,
			InverseTransform:  flatInverse,
			// Uncached so a file edited by another process is read fresh.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		loc:      cfg.Location(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	loc      *time.Location
}

func (p *persistence) ReadHistory() (item.History, error) {
	if !p.d.Has(HistoryFile) {
		return item.History{}, nil
	}
	b, err := p.d.Read(HistoryFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return item.History{}, nil
		}
		return nil, fmt.Errorf("store: read history: %w", err)
	}
	return DecodeHistory(b, p.loc)
}

func (p *persistence) WriteHistory(h item.History) error {
	b, err := EncodeHistory(h)
	if err != nil {
		return err
	}
	if err := p.d.Write(HistoryFile, b); err != nil {
		return fmt.Errorf("store: write history: %w", err)
	}
	return nil
}

func (p *persistence) Path() string {
	return filepath.Join(p.basePath, HistoryFile)
}

// All keys live directly under the base path.
func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverse(pk *diskv.PathKey) string {
	return pk.FileName
}
