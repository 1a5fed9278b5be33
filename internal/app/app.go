package app

import (
	"io"
	"log/slog"

	"github.com/vk/siteforge/internal/content"
	"github.com/vk/siteforge/internal/hclreq"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   *hclreq.Loader
	provider content.Provider
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The built-in
// content decks are verified at construction; a malformed deck is a
// programmer error and panics.
func NewApp(outW io.Writer, config *Config, provider content.Provider) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if provider == nil {
		provider = content.NewStaticProvider()
	}
	logger.Debug("Content provider ready.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		loader:   hclreq.NewLoader(),
		provider: provider,
	}
}
