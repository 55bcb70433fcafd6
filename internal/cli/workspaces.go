package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"burrow/internal/store"
)

func newWorkspacesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Workspace commands",
	}
	cmd.AddCommand(newWorkspacesListCmd(app))
	return cmd
}

func newWorkspacesListCmd(app *App) *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return err
			}

			if archived {
				nodes := db.ArchivedWorkspaces()
				if app.JSON {
					return writeJSON(cmd, nodes)
				}
				for _, ws := range nodes {
					cmd.Println(fmt.Sprintf("%d\t%s", ws.ID, ws.Title))
				}
				return nil
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				cfg = &store.GlobalConfig{}
			}
			opts := store.WalkOptions{
				SkipArchived: true,
				Policy:       cfg.ArchivedPolicy(),
				SkipTasks:    true,
			}
			if app.JSON {
				type row struct {
					ID    int64  `json:"id"`
					Title string `json:"title"`
					Depth int    `json:"depth"`
				}
				var rows []row
				db.Walk(opts, func(e store.Entry) bool {
					rows = append(rows, row{ID: e.Node.ID, Title: e.Node.Title, Depth: e.Depth})
					return true
				})
				return writeJSON(cmd, rows)
			}
			db.Walk(opts, func(e store.Entry) bool {
				cmd.Println(fmt.Sprintf("%d\t%s%s", e.Node.ID, strings.Repeat("  ", e.Depth), e.Node.Title))
				return true
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "List archived workspaces instead")
	return cmd
}
