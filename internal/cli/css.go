package cli

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Keddaaa/Aurane/internal/config"
	"github.com/Keddaaa/Aurane/internal/fontface"
	"github.com/Keddaaa/Aurane/internal/model"
	"github.com/Keddaaa/Aurane/internal/platform"
)

var previewPage = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Aurane « {{.Query}} »</title>
<style>
{{.Stylesheet}}
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #1f2937; }
.card { border: 1px solid #e5e7eb; border-radius: .5rem; padding: 1rem; margin-bottom: 1.5rem; }
.sample { border-top: 1px solid #e5e7eb; margin-top: .5rem; padding: 1rem; font-size: 24px; }
</style>
</head>
<body>
<h1>Aurane</h1>
{{range .Fonts}}<div class="card">
<h2>{{.Name}}</h2>
<div class="sample" style="font-family: '{{.Name}}'">{{$.Sample}}</div>
</div>
{{else}}<p><em>Aucune police trouvée. Essayez autre chose.</em></p>
{{end}}</body>
</html>
`))

type previewData struct {
	Query      string
	Sample     string
	Stylesheet template.CSS
	Fonts      []model.Font
}

func (r *root) newCSSCommand() *cobra.Command {
	var (
		htmlPath string
		open     bool
	)

	cmd := &cobra.Command{
		Use:   "css <query>",
		Short: "Print the @font-face rules registered for a search",
		Long: `Search fonts and print one @font-face rule per distinct font name, exactly
as the window registers them. With --html a standalone preview page is
written as well.`,
		Example: `  aurane css roboto > fonts.css
  aurane css --html preview.html --open lobster`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if open && htmlPath == "" {
				return errors.New("--open requires --html")
			}

			state, err := r.runSearch(cmd, strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, errSearchFailed) {
					fmt.Fprintln(cmd.ErrOrStderr(), r.theme.Error.Render(state.Error))
				}
				return err
			}

			registry := fontface.NewRegistry()
			registry.Inject(r.context(cmd), state.Results)
			fmt.Fprint(cmd.OutOrStdout(), registry.Stylesheet())

			if htmlPath == "" {
				return nil
			}
			if err := writePreviewPage(htmlPath, state, registry); err != nil {
				return err
			}
			success := pterm.Success
			success.Writer = cmd.ErrOrStderr()
			success.Printfln("preview written to %s", htmlPath)

			if open {
				return platform.OpenWithDefaultApp(htmlPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&htmlPath, "html", "", "also write an HTML preview page to this path")
	cmd.Flags().BoolVar(&open, "open", false, "open the HTML preview with the default application")
	return cmd
}

func writePreviewPage(path string, state model.SearchState, registry *fontface.Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview page: %w", err)
	}
	defer f.Close()

	if err := renderPreviewPage(f, state, registry); err != nil {
		return err
	}
	return f.Close()
}

// renderPreviewPage writes the page. Rule.CSS escapes quotes and angle
// brackets, so the stylesheet is safe inside <style>.
func renderPreviewPage(w io.Writer, state model.SearchState, registry *fontface.Registry) error {
	data := previewData{
		Query:      state.Query,
		Sample:     config.DefaultSampleText,
		Stylesheet: template.CSS(registry.Stylesheet()),
		Fonts:      state.Results,
	}
	if err := previewPage.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render preview page: %w", err)
	}
	return nil
}
