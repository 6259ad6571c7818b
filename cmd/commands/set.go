package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <property> <value>",
		Short: "Set a property value and save the config",
		Long: `Set a property to a new value and write the config back to disk.

A timestamped backup of the current file is created before anything is
written. Property values are free-form strings; the server validates them
on startup.

Examples:
  # Rename the server
  sdtdconfig set ServerName "My Server"

  # Change the blood moon frequency
  sdtdconfig set BloodMoonFrequency 10`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)
	if err := ctx.RequireConfigFile(); err != nil {
		return err
	}

	if !catalog.Known(name) {
		cli.PrintWarning("'%s' is not a known server property; it will be added to the file", name)
	}

	doc, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	doc.Set(name, value)
	if err := doc.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cli.PrintSuccess("%s = %s", name, value)
	cli.PrintInfo("Saved %s (backup created)", filepath.Base(ctx.ConfigPath))
	return nil
}
