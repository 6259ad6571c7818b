package tui

// StatusMsg updates the status bar text.
type StatusMsg string

// settingsSavedMsg is emitted by the settings editor when the user saves.
// pathChanged tells the app to load the config file from the new location.
type settingsSavedMsg struct {
	pathChanged bool
}

// settingsCancelledMsg returns to the editor without touching settings.
type settingsCancelledMsg struct{}
