package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (r *root) newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local font catalog",
		Long: `The local catalog is a SQLite database searched by the "catalog" backend.
It starts with a small set of fonts and can be extended from JSON files.`,
	}

	cmd.AddCommand(r.newCatalogImportCommand(), r.newCatalogListCommand())
	return cmd
}

func (r *root) newCatalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Add or update fonts from a JSON file",
		Long: `Import a JSON array of {"name": ..., "url": ...} objects. Existing fonts
with the same name (case-insensitive) are updated; entries without a name or
url are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := r.context(cmd)

			store, err := r.app.OpenCatalog(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.ImportFile(ctx, args[0])
			if err != nil {
				return err
			}
			total, err := store.Count(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), r.theme.RenderKeyValue("imported", fmt.Sprint(n)))
			fmt.Fprintln(cmd.OutOrStdout(), r.theme.RenderKeyValue("total", fmt.Sprint(total)))
			return nil
		},
	}
}

func (r *root) newCatalogListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every font in the local catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := r.context(cmd)

			store, err := r.app.OpenCatalog(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			fonts, err := store.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, fonts)
			}

			data := pterm.TableData{{"Name", "URL"}}
			for _, font := range fonts {
				data = append(data, []string{font.Name, font.URL})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
			fmt.Fprintln(out, table)
			fmt.Fprintf(out, "\n(%d font(s))\n", len(fonts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as a JSON array")
	return cmd
}
