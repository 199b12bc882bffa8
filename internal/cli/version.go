package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X board-cli/internal/cli.Version=...".
var Version = "dev"

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the board version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := map[string]any{"version": Version}
			if info, ok := debug.ReadBuildInfo(); ok {
				data["go"] = info.GoVersion
			}
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	}
}
