package ttl

import (
	"log/slog"
	"time"
)

type config struct {
	now    func() time.Time
	logger *slog.Logger
}

type CacheOption func(*config)

// WithClock sets the time source used to stamp and age entries.
func WithClock(now func() time.Time) CacheOption {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used to report unhashable keys.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []CacheOption) config {
	cfg := config{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
