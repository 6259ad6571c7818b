package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// NewGetCommand creates the get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <property>",
		Short: "Print the current value of a property",
		Long: `Print the current value of a single property from the server config.

Examples:
  # Show the server name
  sdtdconfig get ServerName

  # Use a specific config file
  sdtdconfig get ServerPort --config /path/to/serverconfig.xml`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)
	if err := ctx.RequireConfigFile(); err != nil {
		return err
	}

	doc, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value, err := doc.Get(args[0])
	if err != nil {
		return fmt.Errorf("%w\n\nRun 'sdtdconfig list' to see available properties", err)
	}

	fmt.Println(value)
	return nil
}
