package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

// NewPathCommand creates the path command
func NewPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path [file]",
		Short: "Show or set the configured serverconfig.xml path",
		Long: `Without an argument, show the config file path the editor will use.
With an argument, store that path in the settings file so future runs use it.

Examples:
  # Show the current path
  sdtdconfig path

  # Point the editor at a different install
  sdtdconfig path /srv/7dtd/serverconfig.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPath,
	}
}

func runPath(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)

	if len(args) == 0 {
		fmt.Println(ctx.ConfigPath)
		if _, err := os.Stat(ctx.ConfigPath); os.IsNotExist(err) {
			cli.PrintWarning("File does not exist")
		}
		return nil
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cli.PrintWarning("File does not exist yet: %s", path)
	}

	ctx.Settings.ConfigPath = path
	if err := settings.Save(ctx.Settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cli.PrintSuccess("Config path set to %s", path)
	return nil
}
