package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sdtd-tools/sdtdconfig/cmd/commands"
	"github.com/sdtd-tools/sdtdconfig/internal/cli"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
	"github.com/sdtd-tools/sdtdconfig/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagConfig  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "sdtdconfig",
	Short: "Terminal editor for the 7 Days to Die server config",
	Long: `sdtdconfig is a terminal editor for the 7 Days to Die dedicated
server's serverconfig.xml. Running it without a subcommand opens a
full-screen editor with category tabs, searchable property documentation,
and automatic backups on save. Subcommands provide the same operations for
scripts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings.LoadWithDefault()
		path := settings.ResolveConfigPath(flagConfig, s)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			cli.PrintError("config file not found: %s", path)
			fmt.Fprintln(os.Stderr, "Set a path with 'sdtdconfig path <file>' or pass --config.")
			os.Exit(1)
		}

		doc, err := config.Load(path)
		if err != nil {
			cli.PrintError("%v", err)
			os.Exit(1)
		}

		app := tui.NewApp(doc, s)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			cli.PrintError("failed to start the terminal user interface: %v", err)
			fmt.Fprintln(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.")
			os.Exit(1)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sdtdconfig",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sdtdconfig version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to serverconfig.xml (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewBackupsCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewPathCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
