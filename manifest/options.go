package manifest

import (
	"io"
	"log/slog"
)

// Option configures manifest loading.
type Option func(*config) error

type config struct {
	// logger is the structured logger for debug output.
	//
	// We use *slog.Logger (Go 1.21+ stdlib) rather than a custom interface
	// because slog separates frontend and backend: users can plug in any
	// backend (zap, zerolog, etc.) via slog handlers.
	// See: https://go.dev/blog/slog
	logger *slog.Logger
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithLogger sets the structured logger used during parsing. A nil logger
// leaves parsing silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}
