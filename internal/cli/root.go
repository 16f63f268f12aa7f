package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// AppID is the Fyne application identifier; preferences are stored under it.
const AppID = "com.keddaaa.aurane"

// guiRunner opens the window; replaced in tests
type guiRunner func(ctx context.Context, app *App, info BuildInfo) error

type root struct {
	opts  globalOptions
	info  BuildInfo
	app   *App
	theme *Theme
	gui   guiRunner
}

// commands that work without configuration
var skipInit = map[string]bool{
	"help":       true,
	"completion": true,
	"version":    true,
	"schema":     true,
	"init":       true,
}

// NewRootCommand builds the aurane command tree
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(info, runGUI)
}

func newRootCommand(info BuildInfo, gui guiRunner) *cobra.Command {
	r := &root{info: info, theme: DefaultTheme(), gui: gui}

	cmd := &cobra.Command{
		Use:   "aurane",
		Short: "Search fonts and preview them",
		Long: `Aurane searches a font catalog and previews every result in its own typeface.

Without a subcommand the desktop window opens. The subcommands run the same
search headless, print the @font-face rules the window registers, and manage
the local font catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipInit[cmd.Name()] {
				return nil
			}
			app, err := newApp(r.opts, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			r.app = app
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.gui(r.context(cmd), r.app, r.info)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.opts.configPath, "config", "", "path to config.toml (default: user config directory)")
	flags.StringVar(&r.opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&r.opts.logFormat, "log-format", "", "log format (console, json)")

	cmd.AddCommand(
		r.newSearchCommand(),
		r.newCSSCommand(),
		r.newCatalogCommand(),
		r.newConfigCommand(),
		r.newVersionCommand(),
	)
	return cmd
}

func (r *root) context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if r.app == nil {
		return ctx
	}
	return r.app.Context(ctx)
}

// errSearchFailed is returned when the backend failed; the message has already been printed.
var errSearchFailed = errors.New("font search failed")

// Execute runs the root command with ctx
func Execute(ctx context.Context, info BuildInfo) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}
