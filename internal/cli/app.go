// Package cli provides the aurane command line: the default command opens
// the desktop window, subcommands run the same search and font-face
// pipeline headless.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Keddaaa/Aurane/internal/catalog"
	"github.com/Keddaaa/Aurane/internal/config"
	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/search"
	"github.com/Keddaaa/Aurane/internal/webfonts"
)

// BuildInfo is injected from main via ldflags
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App holds what every command needs once flags are parsed
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// newApp loads configuration and builds the logger. Flag values override
// the configured logging settings when set.
func newApp(opts globalOptions, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(opts.logFormat))
	}
	if err := config.ValidateLogFormat(cfg.Logging.Format); err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	logCfg.Level = level
	if cfg.Logging.Format == logging.FormatJSON {
		logCfg.Format = logging.FormatJSON
	}
	logCfg.Output = logOut

	return &App{Config: cfg, Logger: logging.New(logCfg)}, nil
}

// Context attaches the app logger to ctx
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithContext(ctx, a.Logger)
}

// OpenCatalog opens the local catalog configured for this app
func (a *App) OpenCatalog(ctx context.Context) (*catalog.Store, error) {
	path := a.Config.Database.Path
	if path == "" {
		var err error
		if path, err = catalog.DefaultPath(); err != nil {
			return nil, err
		}
	}

	store, err := catalog.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	store.SetLimit(a.Config.Catalog.Limit)
	return store, nil
}

// OpenBackend returns the configured font search backend and a function
// releasing its resources.
func (a *App) OpenBackend(ctx context.Context) (search.Backend, func() error, error) {
	switch a.Config.Backend {
	case config.BackendWebFonts:
		client, err := webfonts.New(ctx, webfonts.Config{
			APIKey:   a.Config.WebFonts.APIKey,
			Endpoint: a.Config.WebFonts.Endpoint,
			Limit:    a.Config.WebFonts.Limit,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() error { return nil }, nil
	default:
		store, err := a.OpenCatalog(ctx)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}
