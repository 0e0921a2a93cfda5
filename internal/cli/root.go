package cli

import (
	"fmt"
	"os"
	"strings"

	"flowedit/internal/format"
	"flowedit/internal/store"
	"flowedit/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "flowedit",
		Short:         "Linear workflow editor (TUI + CLI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  flowedit

  # Print the starting chain
  flowedit nodes --pretty

  # Apply operations and print the result
  flowedit apply add "rename 3 KYC" "toggle 6"

  # Draw the chain without the TUI
  flowedit render "remove 4"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := tui.Run(store.Seed()); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("FLOWEDIT_FORMAT", "json"), "Output format (json|edn|yaml)")

	cmd.AddCommand(newNodesCmd(app))
	cmd.AddCommand(newApplyCmd(app))
	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}
