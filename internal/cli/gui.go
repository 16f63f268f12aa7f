package cli

import (
	"context"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/Keddaaa/Aurane/internal/fontface"
	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/search"
	"github.com/Keddaaa/Aurane/internal/ui"
)

// runGUI opens the main window and blocks until it is closed
func runGUI(ctx context.Context, app *App, info BuildInfo) error {
	log := logging.FromContext(ctx)
	log.Info().Str("version", info.Version).Str("backend", app.Config.Backend).Msg("Aurane starting")

	backend, closeBackend, err := app.OpenBackend(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			log.Warn().Err(err).Msg("failed to close backend")
		}
	}()

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewAuraneTheme())
	a.SetIcon(ui.LogoResource)

	window := a.NewWindow("Aurane")
	controller := search.NewController(backend)
	ui.NewRootUI(ctx, window, a, controller, fontface.NewLoader())

	window.ShowAndRun()
	return nil
}
