package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (r *root) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build metadata for this binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.theme.Title.Render("Aurane"))
			fmt.Fprintln(out, r.theme.RenderKeyValue("Version", r.info.Version))
			fmt.Fprintln(out, r.theme.RenderKeyValue("Commit", r.info.Commit))
			fmt.Fprintln(out, r.theme.RenderKeyValue("Built", r.info.Date))
			fmt.Fprintln(out, r.theme.RenderKeyValue("Go", runtime.Version()))
		},
	}
}
