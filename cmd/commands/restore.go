package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup>",
		Short: "Restore a backup over the config file",
		Long: `Copy a backup back over the config file. The current file gets its
own timestamped backup first, so a restore can itself be undone.

The backup can be given as a bare file name (as shown by 'sdtdconfig
backups') or a full path.

Examples:
  # See what's available, then restore one
  sdtdconfig backups
  sdtdconfig restore serverconfig.xml.backup_20260824T101500.000000000

  # Restore without confirmation
  sdtdconfig restore serverconfig.xml.backup_20260824T101500.000000000 -y`,
		Args: cobra.ExactArgs(1),
		RunE: runRestore,
	}
}

func runRestore(cmd *cobra.Command, args []string) error {
	backupRef := args[0]

	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)

	backupPath := backupRef
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		// Try it as a file name next to the config file.
		backupPath = filepath.Join(filepath.Dir(ctx.ConfigPath), backupRef)
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return fmt.Errorf("backup '%s' not found\n\nUse 'sdtdconfig backups' to see available backups", backupRef)
		}
	}

	confirmed, err := cli.Confirm(fmt.Sprintf("Restore '%s' over %s?", filepath.Base(backupPath), ctx.ConfigPath), false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Restore cancelled")
		return nil
	}

	if err := config.RestoreBackup(ctx.ConfigPath, backupPath); err != nil {
		return err
	}

	cli.PrintSuccess("Restored %s", filepath.Base(backupPath))
	return nil
}
