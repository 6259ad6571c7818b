// Package settings persists the editor's own preferences: which
// serverconfig.xml to open and a few UI toggles. Core packages never read
// these implicitly; the resolved path is passed to them explicitly.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultServerConfigPath is where a default Windows Steam install puts the
// dedicated server's config file. Used only when neither a flag nor the
// settings file names a path.
const DefaultServerConfigPath = `C:\Program Files (x86)\Steam\steamapps\common\7 Days to Die Dedicated Server\serverconfig.xml`

const settingsFileName = "settings.yaml"

// Settings represents the application configuration.
type Settings struct {
	ConfigPath string     `yaml:"config_path"`
	UI         UISettings `yaml:"ui"`
}

// UISettings controls editor preferences.
type UISettings struct {
	ShowDescriptions bool `yaml:"show_descriptions"`
	ConfirmOnQuit    bool `yaml:"confirm_on_quit"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		ConfigPath: "",
		UI: UISettings{
			ShowDescriptions: true,
			ConfirmOnQuit:    true,
		},
	}
}

// Path returns the location of the settings file inside the user config
// directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "sdtdconfig", settingsFileName), nil
}

// Load reads the settings file, returning defaults when it does not exist.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(content, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// LoadWithDefault loads settings, falling back to defaults on any error.
func LoadWithDefault() *Settings {
	s, err := Load()
	if err != nil {
		return DefaultSettings()
	}
	return s
}

// Save writes the settings file, creating its directory if needed.
func Save(s *Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	content, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// ResolveConfigPath picks the config file path to use: an explicit flag
// value wins, then the settings file, then the default Steam install path.
func ResolveConfigPath(flagValue string, s *Settings) string {
	if flagValue != "" {
		return flagValue
	}
	if s != nil && s.ConfigPath != "" {
		return s.ConfigPath
	}
	return DefaultServerConfigPath
}
