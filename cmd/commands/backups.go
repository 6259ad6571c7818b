package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// NewBackupsCommand creates the backups command
func NewBackupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List the backups recorded for the config file",
		Long: `List the timestamped backups sitting next to the config file,
oldest first. Every save creates one; 'sdtdconfig restore' copies one back.

Examples:
  sdtdconfig backups`,
		RunE: runBackups,
	}
}

func runBackups(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)

	backups, err := config.ListBackups(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		cli.PrintInfo("No backups found for %s", ctx.ConfigPath)
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("BACKUP", "SIZE")
	for _, backup := range backups {
		size := "?"
		if info, err := os.Stat(backup); err == nil {
			size = fmt.Sprintf("%d B", info.Size())
		}
		table.Row(filepath.Base(backup), size)
	}
	table.Flush()

	return nil
}
