package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

var listCategory string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties and their current values",
		Long: `List the properties in the server config, grouped by category.

Examples:
  # List everything
  sdtdconfig list

  # List only the zombie settings
  sdtdconfig list --category Zombies`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listCategory, "category", "", "Only list properties in this category")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)
	if err := ctx.RequireConfigFile(); err != nil {
		return err
	}

	doc, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var only catalog.Category
	if listCategory != "" {
		for _, cat := range catalog.Categories() {
			if strings.EqualFold(string(cat), listCategory) {
				only = cat
				break
			}
		}
		if only == "" {
			return fmt.Errorf("unknown category '%s' (categories: %s)", listCategory, categoryNames())
		}
	}

	// Group document properties by category, document order within each.
	byCategory := make(map[catalog.Category][]config.Property)
	for _, prop := range doc.Properties() {
		cat := catalog.CategoryOf(prop.Name)
		byCategory[cat] = append(byCategory[cat], prop)
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("CATEGORY", "PROPERTY", "VALUE")
	for _, cat := range catalog.Categories() {
		if only != "" && cat != only {
			continue
		}
		for _, prop := range byCategory[cat] {
			table.Row(string(cat), prop.Name, cli.TruncateString(prop.Value, 50))
		}
	}
	table.Flush()

	return nil
}

func categoryNames() string {
	var names []string
	for _, cat := range catalog.Categories() {
		names = append(names, string(cat))
	}
	return strings.Join(names, ", ")
}
