package reconcile

import (
	"fmt"

	"collection-adapter/core/pool"

	"go.uber.org/zap"
)

// Settings holds the externally configurable adapter tuning.
type Settings struct {
	// StashSize is the number of trailing children kept hidden instead of removed.
	StashSize int `mapstructure:"stash_size" default:"3"`
	// PoolCapacity is the default number of idle holders kept per type.
	PoolCapacity int `mapstructure:"pool_capacity" default:"5"`
	// Debug enables the duplicate-put check in pools.
	Debug bool `mapstructure:"debug" default:"false"`
	// SharedPool makes every session draw from one pool.
	SharedPool bool `mapstructure:"shared_pool" default:"false"`
	// StartOffset is the number of fixed leading children in each host.
	StartOffset int `mapstructure:"start_offset" default:"0"`
	// EndOffset is the number of fixed trailing children in each host.
	EndOffset int `mapstructure:"end_offset" default:"0"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		StashSize:    DefaultStashSize,
		PoolCapacity: pool.DefaultCapacity,
	}
}

// Validate rejects negative sizes and offsets.
func (s Settings) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"stash_size", s.StashSize},
		{"pool_capacity", s.PoolCapacity},
		{"start_offset", s.StartOffset},
		{"end_offset", s.EndOffset},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("adapter.%s must not be negative, got %d: %w", c.name, c.value, ErrInvalidArgument)
		}
	}
	return nil
}

// NewPool builds a holder pool using these settings.
func (s Settings) NewPool(name string, log *zap.Logger) *pool.Pool[*Holder] {
	return pool.New[*Holder](pool.Options{
		Name:            name,
		DefaultCapacity: s.PoolCapacity,
		Debug:           s.Debug,
		Logger:          log,
	})
}

// Apply copies the tuning into cfg. A nil p leaves cfg.Pool untouched.
func (s Settings) Apply(cfg *Config, p *pool.Pool[*Holder]) {
	cfg.StashSize = s.StashSize
	cfg.StartOffset = s.StartOffset
	cfg.EndOffset = s.EndOffset
	if p != nil {
		cfg.Pool = p
	}
}
