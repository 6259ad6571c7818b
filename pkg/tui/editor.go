package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
	"github.com/sdtd-tools/sdtdconfig/pkg/search"
	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

// EditorModel is the main editing view: category tabs, one text input per
// property, a search bar, and a description panel for the focused property.
type EditorModel struct {
	doc   *config.Document
	prefs *settings.Settings

	tabs      []catalog.Category
	rows      map[catalog.Category][]string
	inputs    map[string]textinput.Model
	activeTab int
	focusRow  int

	searchInput   textinput.Model
	searchFocused bool
	searchState   *search.State

	viewport viewport.Model
	confirm  Confirmation
	status   string
	width    int
	height   int
}

// NewEditorModel builds the editor for a loaded document.
func NewEditorModel(doc *config.Document, prefs *settings.Settings) *EditorModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search for properties or keywords in descriptions"
	searchInput.CharLimit = 100

	e := &EditorModel{
		prefs:       prefs,
		tabs:        catalog.Categories(),
		searchInput: searchInput,
		searchState: &search.State{},
		viewport:    viewport.New(80, 20),
	}
	e.bind(doc)
	e.status = loadedStatus(doc)
	return e
}

// bind points the editor at a document, rebuilding rows, inputs and change
// watchers. Called on construction and again after every reload.
func (e *EditorModel) bind(doc *config.Document) {
	e.doc = doc
	e.rows = buildRows(doc)
	e.inputs = make(map[string]textinput.Model, doc.Len())

	for _, prop := range doc.Properties() {
		in := textinput.New()
		in.SetValue(prop.Value)
		in.CharLimit = 0
		in.Width = 40
		in.Prompt = ""
		e.inputs[prop.Name] = in

		name := prop.Name
		doc.Watch(name, func(value string) {
			e.status = fmt.Sprintf("%s modified", name)
		})
	}

	if e.activeTab >= len(e.tabs) {
		e.activeTab = 0
	}
	e.clampFocus()
	e.focusCurrent()
}

// buildRows lays out property names per tab: catalog layout order for known
// properties, then any unknown properties appended to Other in document
// order rather than dropped.
func buildRows(doc *config.Document) map[catalog.Category][]string {
	present := make(map[string]bool, doc.Len())
	for _, prop := range doc.Properties() {
		present[prop.Name] = true
	}

	rows := make(map[catalog.Category][]string)
	for _, cat := range catalog.Categories() {
		for _, name := range catalog.Names(cat) {
			if present[name] {
				rows[cat] = append(rows[cat], name)
			}
		}
	}
	for _, prop := range doc.Properties() {
		if !catalog.Known(prop.Name) {
			rows[catalog.Other] = append(rows[catalog.Other], prop.Name)
		}
	}
	return rows
}

func loadedStatus(doc *config.Document) string {
	status := fmt.Sprintf("Loaded %s • %d properties", filepath.Base(doc.Path), doc.Len())
	if doc.Repaired {
		status += " (XML was repaired)"
	}
	return status
}

// SetSize updates the layout for a new terminal size.
func (e *EditorModel) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.viewport.Width = width
	// Header, tabs, search bar, description panel, status and help lines.
	chrome := 12
	if height-chrome < 3 {
		e.viewport.Height = 3
	} else {
		e.viewport.Height = height - chrome
	}
}

func (e *EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles one message. It returns a command and whether the app
// should quit.
func (e *EditorModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if e.confirm.Active {
		return e.updateConfirm(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c":
		if e.doc.IsDirty() && e.prefs.UI.ConfirmOnQuit {
			e.confirm.Ask("Discard unsaved changes and quit?", confirmQuit)
			return nil
		}
		return tea.Quit

	case "ctrl+s":
		e.save()
		return nil

	case "ctrl+r":
		if e.doc.IsDirty() {
			e.confirm.Ask("Discard unsaved changes and reload?", confirmReload)
			return nil
		}
		e.reload()
		return nil

	case "ctrl+d":
		if err := CopyDebugInfo(e.doc); err != nil {
			e.status = fmt.Sprintf("Failed to copy debug info: %v", err)
		} else {
			e.status = "Debug information copied to clipboard"
		}
		return nil

	case "ctrl+f":
		e.focusSearch()
		return nil

	case "esc":
		if e.searchFocused || e.searchInput.Value() != "" {
			e.clearSearch()
		}
		return nil

	case "ctrl+n":
		e.searchState.Next()
		e.jumpToMatch()
		return nil

	case "ctrl+b":
		e.searchState.Prev()
		e.jumpToMatch()
		return nil

	case "tab":
		e.switchTab(1)
		return nil

	case "shift+tab":
		e.switchTab(-1)
		return nil
	}

	if e.searchFocused {
		return e.updateSearch(keyMsg)
	}
	return e.updateField(keyMsg)
}

func (e *EditorModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		action := e.confirm.Action
		e.confirm.Clear()
		switch action {
		case confirmReload:
			e.reload()
		case confirmQuit:
			return tea.Quit
		}
	case "n", "N", "esc":
		e.confirm.Clear()
	}
	return nil
}

func (e *EditorModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		if len(e.searchState.Matches) > 0 {
			e.searchState.Next()
			e.jumpToMatch()
		}
		return nil
	}

	var cmd tea.Cmd
	before := e.searchInput.Value()
	e.searchInput, cmd = e.searchInput.Update(msg)
	if e.searchInput.Value() != before {
		e.runSearch()
	}
	return cmd
}

func (e *EditorModel) updateField(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		e.moveFocus(-1)
		return nil
	case "down", "enter":
		e.moveFocus(1)
		return nil
	}

	name, ok := e.focusedName()
	if !ok {
		return nil
	}

	in := e.inputs[name]
	before := in.Value()
	in, cmd := in.Update(msg)
	e.inputs[name] = in
	if in.Value() != before {
		e.doc.Set(name, in.Value())
	}
	return cmd
}

// runSearch recomputes the search state from scratch. Matches are ordered by
// category then document position, so the counter is stable for a given
// document and query.
func (e *EditorModel) runSearch() {
	e.searchState = search.Search(e.doc, e.searchInput.Value())
	if len(e.searchState.Matches) > 0 {
		e.jumpToMatch()
	} else if e.searchInput.Value() != "" {
		e.status = "No results"
	}
}

// jumpToMatch switches to the tab holding the current match and focuses it.
func (e *EditorModel) jumpToMatch() {
	name, ok := e.searchState.CurrentName()
	if !ok {
		return
	}

	cat := catalog.CategoryOf(name)
	for i, tab := range e.tabs {
		if tab == cat {
			e.activeTab = i
			break
		}
	}
	for i, row := range e.rows[cat] {
		if row == name {
			e.focusRow = i
			break
		}
	}
	e.focusCurrent()
	e.scrollToFocus()
}

func (e *EditorModel) focusSearch() {
	e.searchFocused = true
	e.searchInput.Focus()
	e.blurField()
}

func (e *EditorModel) clearSearch() {
	e.searchFocused = false
	e.searchInput.Blur()
	e.searchInput.SetValue("")
	e.searchState = &search.State{}
	e.focusCurrent()
}

func (e *EditorModel) switchTab(delta int) {
	e.searchFocused = false
	e.searchInput.Blur()
	e.blurField()
	e.activeTab = (e.activeTab + delta + len(e.tabs)) % len(e.tabs)
	e.focusRow = 0
	e.focusCurrent()
	e.viewport.SetYOffset(0)
}

func (e *EditorModel) moveFocus(delta int) {
	rows := e.activeRows()
	if len(rows) == 0 {
		return
	}
	e.blurField()
	e.focusRow = (e.focusRow + delta + len(rows)) % len(rows)
	e.focusCurrent()
	e.scrollToFocus()
}

func (e *EditorModel) activeRows() []string {
	return e.rows[e.tabs[e.activeTab]]
}

func (e *EditorModel) focusedName() (string, bool) {
	rows := e.activeRows()
	if e.focusRow < 0 || e.focusRow >= len(rows) {
		return "", false
	}
	return rows[e.focusRow], true
}

func (e *EditorModel) clampFocus() {
	if rows := e.activeRows(); e.focusRow >= len(rows) {
		e.focusRow = 0
	}
}

func (e *EditorModel) focusCurrent() {
	if e.searchFocused {
		return
	}
	if name, ok := e.focusedName(); ok {
		in := e.inputs[name]
		in.Focus()
		e.inputs[name] = in
	}
}

func (e *EditorModel) blurField() {
	if name, ok := e.focusedName(); ok {
		in := e.inputs[name]
		in.Blur()
		e.inputs[name] = in
	}
}

func (e *EditorModel) scrollToFocus() {
	if e.focusRow < e.viewport.YOffset {
		e.viewport.SetYOffset(e.focusRow)
	} else if e.focusRow >= e.viewport.YOffset+e.viewport.Height {
		e.viewport.SetYOffset(e.focusRow - e.viewport.Height + 1)
	}
}

func (e *EditorModel) save() {
	if err := e.doc.Save(); err != nil {
		e.status = fmt.Sprintf("Save failed: %v", err)
		return
	}
	e.status = fmt.Sprintf("Saved successfully at %s", time.Now().Format("15:04:05"))
	// The match list is derived state; rebuild it after any save.
	if e.searchInput.Value() != "" {
		e.searchState = search.Search(e.doc, e.searchInput.Value())
	}
}

func (e *EditorModel) reload() {
	doc, err := e.doc.Reload()
	if err != nil {
		e.status = fmt.Sprintf("Reload failed: %v", err)
		return
	}
	e.bind(doc)
	e.status = loadedStatus(doc)
	if e.searchInput.Value() != "" {
		e.runSearch()
	}
}
