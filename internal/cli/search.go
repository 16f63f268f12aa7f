package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Keddaaa/Aurane/internal/model"
	"github.com/Keddaaa/Aurane/internal/search"
)

// errEmptyQuery mirrors the window: a blank query never reaches the backend
var errEmptyQuery = errors.New("query is empty")

func (r *root) newSearchCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search fonts and print the results",
		Long: `Run a font search with the configured backend and print every match.

The query is trimmed; words are joined with a single space.`,
		Example: `  aurane search roboto
  aurane search --json open sans`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := r.runSearch(cmd, strings.Join(args, " "))
			if err != nil && !errors.Is(err, errSearchFailed) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if encErr := writeJSON(out, state.Results); encErr != nil {
					return encErr
				}
			} else {
				fmt.Fprint(out, r.theme.RenderResults(state))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as a JSON array")
	return cmd
}

// runSearch drives one request through the search controller, the same
// path the window uses.
func (r *root) runSearch(cmd *cobra.Command, query string) (model.SearchState, error) {
	ctx := r.context(cmd)

	backend, closeBackend, err := r.app.OpenBackend(ctx)
	if err != nil {
		return model.SearchState{}, err
	}
	defer closeBackend()

	controller := search.NewController(backend)
	req, ok := controller.Begin(query)
	if !ok {
		return controller.State(), errEmptyQuery
	}

	stop := startSpinner(fmt.Sprintf("Recherche de « %s »...", req.Query))
	controller.Complete(ctx, req)
	state := controller.State()
	stop(state)

	if state.HasError() {
		return state, errSearchFailed
	}
	return state, nil
}

// startSpinner shows progress on stderr when it is a terminal
func startSpinner(text string) func(model.SearchState) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func(model.SearchState) {}
	}

	printer := pterm.DefaultSpinner
	printer.Writer = os.Stderr
	spinner, err := printer.Start(text)
	if err != nil {
		return func(model.SearchState) {}
	}

	return func(state model.SearchState) {
		if !state.Status.IsFinished() {
			_ = spinner.Stop()
			return
		}
		if state.HasError() {
			spinner.Fail(state.Error)
			return
		}
		spinner.Success(fmt.Sprintf("%d police(s)", len(state.Results)))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
