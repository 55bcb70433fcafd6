package cli

import (
	"github.com/spf13/cobra"

	"burrow/internal/store"
)

func newPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the data file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app)
			if err != nil {
				return err
			}
			cmd.Println(store.Store{Dir: dir}.DataPath())
			return nil
		},
	}
}
