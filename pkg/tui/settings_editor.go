package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

const (
	settingsFieldPath = iota
	settingsFieldShowDescriptions
	settingsFieldConfirmOnQuit
	settingsFieldCount
)

// SettingsEditorModel is the small form for the editor's own preferences.
type SettingsEditorModel struct {
	prefs *settings.Settings

	pathInput        textinput.Model
	showDescriptions bool
	confirmOnQuit    bool
	focusIndex       int
	status           string
}

func NewSettingsEditorModel(prefs *settings.Settings) *SettingsEditorModel {
	pathInput := textinput.New()
	pathInput.Placeholder = settings.DefaultServerConfigPath
	pathInput.CharLimit = 255
	pathInput.Width = 60
	pathInput.SetValue(prefs.ConfigPath)
	pathInput.Focus()

	return &SettingsEditorModel{
		prefs:            prefs,
		pathInput:        pathInput,
		showDescriptions: prefs.UI.ShowDescriptions,
		confirmOnQuit:    prefs.UI.ConfirmOnQuit,
	}
}

func (m *SettingsEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SettingsEditorModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		return func() tea.Msg { return settingsCancelledMsg{} }

	case "enter":
		return m.saveSettings()

	case "up", "shift+tab":
		m.moveFocus(-1)
		return nil

	case "down", "tab":
		m.moveFocus(1)
		return nil

	case " ":
		switch m.focusIndex {
		case settingsFieldShowDescriptions:
			m.showDescriptions = !m.showDescriptions
			return nil
		case settingsFieldConfirmOnQuit:
			m.confirmOnQuit = !m.confirmOnQuit
			return nil
		}
	}

	if m.focusIndex == settingsFieldPath {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(keyMsg)
		return cmd
	}
	return nil
}

func (m *SettingsEditorModel) moveFocus(delta int) {
	m.focusIndex = (m.focusIndex + delta + settingsFieldCount) % settingsFieldCount
	if m.focusIndex == settingsFieldPath {
		m.pathInput.Focus()
	} else {
		m.pathInput.Blur()
	}
}

func (m *SettingsEditorModel) saveSettings() tea.Cmd {
	oldPath := m.prefs.ConfigPath
	m.prefs.ConfigPath = strings.TrimSpace(m.pathInput.Value())
	m.prefs.UI.ShowDescriptions = m.showDescriptions
	m.prefs.UI.ConfirmOnQuit = m.confirmOnQuit

	if err := settings.Save(m.prefs); err != nil {
		m.status = fmt.Sprintf("Failed to save settings: %v", err)
		return nil
	}

	pathChanged := m.prefs.ConfigPath != oldPath && m.prefs.ConfigPath != ""
	return func() tea.Msg { return settingsSavedMsg{pathChanged: pathChanged} }
}

func (m *SettingsEditorModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel(settingsFieldPath, "Config file"))
	b.WriteString("\n  " + m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLabel(settingsFieldShowDescriptions, fmt.Sprintf("Show descriptions: %s", checkbox(m.showDescriptions))))
	b.WriteString("\n")
	b.WriteString(m.renderLabel(settingsFieldConfirmOnQuit, fmt.Sprintf("Confirm before quitting with unsaved changes: %s", checkbox(m.confirmOnQuit))))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓: field • space: toggle • enter: save • esc: cancel"))

	return b.String()
}

func (m *SettingsEditorModel) renderLabel(index int, text string) string {
	if m.focusIndex == index {
		return focusedNameStyle.Render("› " + text)
	}
	return propNameStyle.Render("  " + text)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
