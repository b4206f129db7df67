package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Balackburn/tweakplan/internal/ctxlog"
	"github.com/Balackburn/tweakplan/internal/registry"
	"github.com/Balackburn/tweakplan/internal/resolver"
)

// App encapsulates the analyzer's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	resolver *resolver.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and the
// compiled metadata registry.
func NewApp(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg, err := registry.Load(ctx)
	if err != nil {
		// A failure to compile the embedded tables is a fatal startup error.
		panic(fmt.Errorf("failed to load metadata registry: %w", err))
	}
	logger.Debug("Metadata registry loaded.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		resolver: resolver.New(reg),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
