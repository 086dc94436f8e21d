// Package app wires configuration, persistence and the submission store
// together so the CLI and the TUI share one set of operations.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"tableflip.dev/subtrack/pkg/item"
	"tableflip.dev/subtrack/pkg/store"
	"tableflip.dev/subtrack/pkg/submission"
	"tableflip.dev/subtrack/pkg/timeutil"
)

var (
	ErrNoStore         = errors.New("app: no submission store configured")
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrNothingToSubmit = errors.New("app: nothing to submit")
	ErrNotFound        = errors.New("app: item not found in history")
)

// Service provides the user facing operations over a submission store.
type Service struct {
	Config      store.Config
	Persistence store.Persistence
	Store       *submission.Store
}

// Open loads configuration (when cfg is nil), opens the history file and
// builds the store. opts are applied after the config derived options.
func Open(cfg store.Config, logger *slog.Logger, opts ...submission.Option) (*Service, error) {
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	base := []submission.Option{
		submission.WithLocation(cfg.Location()),
		submission.WithRetentionMonths(cfg.RetentionMonths()),
		submission.WithLogger(logger),
	}
	return &Service{
		Config:      cfg,
		Persistence: p,
		Store:       submission.New(p, append(base, opts...)...),
	}, nil
}

// Submit adds each non blank description as a pending item and submits
// the pending list. It returns today's history.
func (s *Service) Submit(descriptions ...string) ([]item.Item, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	added := 0
	for _, d := range descriptions {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		s.Store.AddItem(d)
		added++
	}
	if added == 0 && len(s.Store.CurrentItems()) == 0 {
		return nil, ErrNothingToSubmit
	}
	s.Store.MarkAsSubmitted()
	return s.Store.ItemsForDate(s.Store.Today()), nil
}

// Day returns the history of the day containing on.
func (s *Service) Day(on time.Time) ([]item.Item, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	return s.Store.ItemsForDate(on), nil
}

// Locate finds the day holding a history item. With on set only that day
// is searched.
func (s *Service) Locate(id int, on *time.Time) (time.Time, item.Item, error) {
	if s.Store == nil {
		return time.Time{}, item.Item{}, ErrNoStore
	}
	if on == nil {
		day, it, ok := s.Store.FindHistoryItem(id)
		if !ok {
			return time.Time{}, item.Item{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
		}
		return day, it, nil
	}
	for _, it := range s.Store.ItemsForDate(*on) {
		if it.ID == id {
			return timeutil.Day(*on, s.Store.Location()), it, nil
		}
	}
	return time.Time{}, item.Item{}, fmt.Errorf("%w: #%d on %s", ErrNotFound, id, timeutil.FormatDay(*on))
}

// Remove deletes a history item. Ids are compacted afterwards, so the
// returned item carries the id it had before removal.
func (s *Service) Remove(id int, on *time.Time) (item.Item, error) {
	day, it, err := s.Locate(id, on)
	if err != nil {
		return item.Item{}, err
	}
	if !s.Store.RemoveHistoryItem(id, day) {
		return item.Item{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	return it, nil
}

// ToggleReceived flips the received flag of a history item and returns the
// updated item.
func (s *Service) ToggleReceived(id int, on *time.Time) (item.Item, error) {
	day, it, err := s.Locate(id, on)
	if err != nil {
		return item.Item{}, err
	}
	if !s.Store.ToggleItemReceived(id, day) {
		return item.Item{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	it.IsReceived = !it.IsReceived
	return it, nil
}

// Clear wipes the history.
func (s *Service) Clear() error {
	if s.Store == nil {
		return ErrNoStore
	}
	s.Store.ClearHistory()
	return nil
}

// SaveError reports a dropped history write, if the last one failed.
func (s *Service) SaveError() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.LastSaveError()
}

// Watch subscribes to changes of the history file.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
