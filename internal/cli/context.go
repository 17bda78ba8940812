package cli

import (
	"context"

	"github.com/thenoetrevino/quadro/internal/config"
)

type configKey struct{}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig.
// Commands run without one (as in tests) get the defaults.
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}
