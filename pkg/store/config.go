package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/subtrack/pkg/timeutil"
)

// ConfigPathEnv overrides the directory searched for .subtrack.yaml.
const ConfigPathEnv = "SUBTRACK_CONFIG_PATH"

const (
	defaultPath            = "~/.subtrack"
	defaultRetentionMonths = 4
)

// DefaultQuickItems are the quick add templates used when none are configured.
var DefaultQuickItems = []string{"TShirt", "Shirt", "Bedsheet", "Pillow Cover", "Pajama", "Bath Towel"}

// Config exposes the settings the store and the front ends need.
type Config interface {
	BasePath() string
	Location() *time.Location
	RetentionMonths() int
	CleanInterval() time.Duration
	QuickItems() []string
	ConfigFile() string
}

// LoadConfig reads .subtrack.yaml (if any) and SUBTRACK_* environment
// variables. Keys: path, retention_months, clean_interval, quick.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("retention_months", defaultRetentionMonths)
	v.SetDefault("clean_interval", timeutil.DefaultCleanInterval)
	v.SetDefault("quick", DefaultQuickItems)
	v.SetConfigName(".subtrack") // .yaml is implicit
	v.SetEnvPrefix("SUBTRACK")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	interval, _, err := timeutil.ParseWindow(v.GetString("clean_interval"))
	if err != nil {
		return nil, fmt.Errorf("store: clean_interval: %w", err)
	}

	months := v.GetInt("retention_months")
	if months <= 0 {
		return nil, fmt.Errorf("store: retention_months must be positive, got %d", months)
	}

	quick := v.GetStringSlice("quick")
	if len(quick) == 0 {
		quick = DefaultQuickItems
	}

	return &fileConfig{
		Path:      path,
		Retention: months,
		Interval:  interval,
		Quick:     quick,
		File:      v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path      string        `json:"path"`
	Retention int           `json:"retention_months"`
	Interval  time.Duration `json:"clean_interval"`
	Quick     []string      `json:"quick"`
	File      string        `json:"config_file"`
}

func (f *fileConfig) BasePath() string             { return f.Path }
func (f *fileConfig) Location() *time.Location     { return time.Local }
func (f *fileConfig) RetentionMonths() int         { return f.Retention }
func (f *fileConfig) CleanInterval() time.Duration { return f.Interval }
func (f *fileConfig) QuickItems() []string         { return f.Quick }
func (f *fileConfig) ConfigFile() string           { return f.File }
