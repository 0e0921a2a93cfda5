package cli

import (
	"fmt"

	"flowedit/internal/docs"
	"flowedit/internal/publish"

	"github.com/spf13/cobra"
)

func newPublishCmd(app *App) *cobra.Command {
	var title string
	var meta bool
	var pretty bool
	var width int

	cmd := &cobra.Command{
		Use:   "publish [op...]",
		Short: "Print the chain (after optional operations) as Markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := applyOps(args)
			if err != nil {
				return writeErr(cmd, err)
			}
			md := publish.RenderChainMarkdown(st, publish.RenderOptions{Title: title, IncludeMeta: meta})
			if pretty {
				md = docs.Render(md, width, envOr("FLOWEDIT_TUI_MD_STYLE", "dark")) + "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Document heading (default: Workflow)")
	cmd.Flags().BoolVar(&meta, "meta", false, "Include id, kind and position for each node")
	cmd.Flags().BoolVar(&pretty, "render", false, "Render the Markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width when rendering")

	return cmd
}
