package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"burrow/internal/model"
	"burrow/internal/store"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <workspace-id>",
		Short: "List a workspace's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid workspace id %q", args[0])
			}

			db, _, err := loadDB(app)
			if err != nil {
				return err
			}
			ws, ok := db.FindNode(id)
			if !ok || ws.Kind != model.KindWorkspace {
				return fmt.Errorf("workspace not found: %d", id)
			}

			entries := store.Collect(ws.Tasks, store.WalkOptions{})
			if app.JSON {
				type row struct {
					ID     int64        `json:"id"`
					Title  string       `json:"title"`
					Status model.Status `json:"status"`
					Due    string       `json:"due,omitempty"`
					Depth  int          `json:"depth"`
				}
				rows := make([]row, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, row{
						ID: e.Node.ID, Title: e.Node.Title,
						Status: e.Node.Status, Due: e.Node.Due, Depth: e.Depth,
					})
				}
				return writeJSON(cmd, rows)
			}

			for _, e := range entries {
				line := fmt.Sprintf("%d\t%s[%s] %s", e.Node.ID, strings.Repeat("  ", e.Depth), e.Node.Status, e.Node.Title)
				if e.Node.Due != "" {
					line += "  due " + e.Node.Due
				}
				cmd.Println(line)
			}
			return nil
		},
	}
	return cmd
}
