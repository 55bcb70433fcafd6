package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"burrow/internal/model"
	"burrow/internal/mutate"
)

func newAddCmd(app *App) *cobra.Command {
	var parent int64

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a workspace (or a child of --parent)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, s, err := loadDB(app)
			if err != nil {
				return err
			}

			// Top-level adds create workspaces; adds under a parent
			// create tasks (sub-workspaces are a TUI affair).
			kind := model.KindWorkspace
			if parent != mutate.RootParent {
				if _, ok := db.FindNode(parent); !ok {
					return fmt.Errorf("parent not found: %d", parent)
				}
				kind = model.KindTask
			}

			n, err := mutate.Create(db, parent, kind, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := s.Save(db); err != nil {
				return err
			}
			if app.JSON {
				return writeJSON(cmd, n)
			}
			cmd.Println(fmt.Sprintf("%d\t%s", n.ID, n.Title))
			return nil
		},
	}

	cmd.Flags().Int64Var(&parent, "parent", mutate.RootParent, "Parent id (0 adds a top-level workspace)")
	return cmd
}
