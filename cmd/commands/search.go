package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
	"github.com/sdtd-tools/sdtdconfig/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var searchOutput string

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search properties by name or description",
		Long: `Search the server config for properties whose name or description
contains the query (case-insensitive).

Results are ordered by category, then by the order properties appear in the
file.

Examples:
  # Find everything zombie-related
  sdtdconfig search zombie

  # Find the telnet settings as JSON
  sdtdconfig search telnet --output json`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchOutput, "output", "text", "Output format: text, json, or yaml")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	configFlag, _ := cmd.Flags().GetString("config")
	ctx := cli.NewCommandContext(configFlag)
	if err := ctx.RequireConfigFile(); err != nil {
		return err
	}

	doc, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	state := search.Search(doc, query)

	result := SearchResultOutput{
		Query:   query,
		Count:   len(state.Matches),
		Results: []SearchItemOutput{},
	}
	for _, name := range state.Matches {
		value, _ := doc.Get(name)
		result.Results = append(result.Results, SearchItemOutput{
			Name:        name,
			Category:    string(catalog.CategoryOf(name)),
			Value:       value,
			Description: catalog.Describe(name, doc),
		})
	}

	if searchOutput != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, searchOutput, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No properties match '%s'", query)
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("PROPERTY", "CATEGORY", "VALUE", "DESCRIPTION")
	for _, item := range result.Results {
		table.Row(item.Name, item.Category, cli.TruncateString(item.Value, 30), cli.TruncateString(item.Description, 60))
	}
	table.Flush()
	cli.PrintInfo("%d of %d properties match", result.Count, doc.Len())

	return nil
}
