package cli

import (
	"fmt"
	"os"

	"board-cli/internal/script"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Replay an action script headlessly and print the board",
		Long:  "Replays submit/add/move actions through the board's views and prints the active and finished lists.\nRun `board docs scripting` for the script format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return writeErr(cmd, fmt.Errorf("missing --script"))
			}
			var s script.Script
			var err error
			if path == "-" {
				s, err = script.Parse(cmd.InOrStdin())
			} else {
				f, openErr := os.Open(path)
				if openErr != nil {
					return writeErr(cmd, fmt.Errorf("open script: %w", openErr))
				}
				s, err = script.Parse(f)
				f.Close()
			}
			if err != nil {
				return writeErr(cmd, err)
			}

			markup, err := loadMarkup(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := script.Run(markup, s, app.logger)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.logger.Info("rendered board", "actions", len(s.Actions), "active", len(res.Active), "finished", len(res.Finished), "alerts", len(res.Alerts))
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().StringVar(&path, "script", "", "Path to a YAML or JSON action script (- for stdin)")
	return cmd
}
