package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <property>",
		Short: "Show a property's documentation, category and value",
		Long: `Show everything known about a property: its category, its current
value, and its documentation. A comment in the config file itself takes
precedence over the builtin description, since it documents the installed
server version.

Examples:
  sdtdconfig describe BloodMoonFrequency`,
		Args: cobra.ExactArgs(1),
		RunE: runDescribe,
	}
}

func runDescribe(cmd *cobra.Command, args []string) error {
	name := args[0]

	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)
	if err := ctx.RequireConfigFile(); err != nil {
		return err
	}

	doc, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Property: %s\n", name)
	fmt.Printf("Category: %s\n", catalog.CategoryOf(name))

	if value, err := doc.Get(name); err == nil {
		fmt.Printf("Value:    %s\n", value)
	} else {
		fmt.Printf("Value:    (not present in %s)\n", ctx.ConfigPath)
	}

	if desc := catalog.Describe(name, doc); desc != "" {
		fmt.Printf("\n%s\n", desc)
	} else {
		cli.PrintInfo("No description available for '%s'", name)
	}

	return nil
}
