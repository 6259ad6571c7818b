package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdtd-tools/sdtdconfig/pkg/config"
	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

type sessionState int

const (
	editorView sessionState = iota
	settingsView
)

// App is the top-level bubbletea model, switching between the editor and the
// settings form.
type App struct {
	state      sessionState
	editor     *EditorModel
	settingsEd *SettingsEditorModel
	prefs      *settings.Settings
	width      int
	height     int
}

// NewApp wires up the TUI around an already-loaded document.
func NewApp(doc *config.Document, prefs *settings.Settings) *App {
	return &App{
		state:  editorView,
		editor: NewEditorModel(doc, prefs),
		prefs:  prefs,
	}
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		a.editor.status = string(msg)
		return a, nil

	case settingsSavedMsg:
		a.state = editorView
		if msg.pathChanged {
			a.openConfig(a.prefs.ConfigPath)
		} else {
			a.editor.status = "Settings saved"
		}
		return a, nil

	case settingsCancelledMsg:
		a.state = editorView
		return a, nil

	case tea.KeyMsg:
		if a.state == editorView && msg.String() == "ctrl+o" {
			a.state = settingsView
			a.settingsEd = NewSettingsEditorModel(a.prefs)
			return a, a.settingsEd.Init()
		}
	}

	switch a.state {
	case settingsView:
		return a, a.settingsEd.Update(msg)
	default:
		return a, a.editor.Update(msg)
	}
}

// openConfig loads the file at path and rebinds the editor to it. On failure
// the current document stays loaded and the error lands in the status bar.
func (a *App) openConfig(path string) {
	doc, err := config.Load(path)
	if err != nil {
		a.editor.status = fmt.Sprintf("Failed to open %s: %v", path, err)
		return
	}
	a.editor.bind(doc)
	a.editor.status = loadedStatus(doc)
}

func (a *App) View() string {
	if a.state == settingsView {
		return a.settingsEd.View()
	}
	return a.editor.View()
}
