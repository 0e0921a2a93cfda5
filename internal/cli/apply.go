package cli

import (
	"fmt"

	"flowedit/internal/editor"
	"flowedit/internal/render"
	"flowedit/internal/script"
	"flowedit/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <op>...",
		Short: "Apply operations to the starting chain and print the result",
		Long:  "Each argument is one operation. Run `flowedit docs scripting` for the grammar.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, outcomes, err := applyOps(args)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": st.Nodes(),
				"meta": map[string]any{"ops": outcomes},
			})
		},
	}
	return cmd
}

func newRenderCmd(app *App) *cobra.Command {
	var width int
	var color bool

	cmd := &cobra.Command{
		Use:   "render [op...]",
		Short: "Draw the chain (after optional operations) to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := applyOps(args)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !color {
				lipgloss.SetColorProfile(termenv.Ascii)
			} else {
				lipgloss.SetColorProfile(termenv.EnvColorProfile())
			}
			out := render.Draw(render.Build(st, editor.Cursor{}), render.DrawOptions{Width: width})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "Drawing width in columns")
	cmd.Flags().BoolVar(&color, "color", false, "Emit ANSI colors (honors NO_COLOR/CLICOLOR)")

	return cmd
}

func applyOps(args []string) (store.Store, []script.Outcome, error) {
	ops, err := script.ParseAll(args)
	if err != nil {
		return store.Store{}, nil, err
	}
	st, outcomes := script.Apply(store.Seed(), ops)
	return st, outcomes, nil
}
