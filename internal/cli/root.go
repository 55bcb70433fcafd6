package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"burrow/internal/store"
	"burrow/internal/tui"
)

type App struct {
	Dir  string
	JSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "burrow",
		Short:        "Hierarchical workspaces and tasks in your terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  burrow

  # Scriptable commands
  burrow workspaces list
  burrow tasks list 3
  burrow add "Q3 Planning"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Data directory (default ~/.burrow, or BURROW_CONFIG_DIR)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "JSON output for scriptable commands")

	cmd.AddCommand(newWorkspacesCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newPathCmd(app))
	return cmd
}

func resolveDir(app *App) (string, error) {
	if strings.TrimSpace(app.Dir) != "" {
		return app.Dir, nil
	}
	return store.ConfigDir()
}

func loadDB(app *App) (*store.DB, store.Store, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	s := store.Store{Dir: dir}
	db, err := s.Load()
	if err != nil {
		return nil, s, err
	}
	return db, s, nil
}

func runTUI(app *App) error {
	dir, err := resolveDir(app)
	if err != nil {
		return err
	}
	return tui.Run(store.Store{Dir: dir})
}

func writeJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(b))
	return nil
}
