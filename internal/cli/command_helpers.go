package cli

import (
	"fmt"
	"os"

	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

// CommandContext resolves the config file path and settings shared by all
// subcommands.
type CommandContext struct {
	ConfigPath string
	Settings   *settings.Settings
}

// NewCommandContext builds the context for one command invocation. flagPath
// is the value of the --config flag; it takes precedence over the settings
// file and the default install path.
func NewCommandContext(flagPath string) *CommandContext {
	s := settings.LoadWithDefault()
	return &CommandContext{
		ConfigPath: settings.ResolveConfigPath(flagPath, s),
		Settings:   s,
	}
}

// RequireConfigFile verifies the resolved config file exists before a
// command tries to load it.
func (c *CommandContext) RequireConfigFile() error {
	if _, err := os.Stat(c.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s\n\nSet a path with 'sdtdconfig path <file>' or pass --config", c.ConfigPath)
	}
	return nil
}
