package cli

import (
	"strconv"

	"flowedit/internal/store"

	"github.com/spf13/cobra"
)

func newNodesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes [id]",
		Short: "Print the starting chain (or one node of it)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.Seed()
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": st.Nodes()})
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, errInvalidID(args[0]))
			}
			n, ok := st.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("node", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}
	return cmd
}
