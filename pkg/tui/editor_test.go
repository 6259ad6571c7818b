package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
	"github.com/sdtd-tools/sdtdconfig/pkg/settings"
)

const editorFixture = `<?xml version="1.0"?>
<ServerSettings>
	<property name="ServerName" value="MyServer"/>
	<property name="ServerPort" value="26900"/>
	<!-- a zombie horde rises every Nth day -->
	<property name="BloodMoonFrequency" value="7"/>
	<property name="SomeModSetting" value="on"/>
</ServerSettings>
`

func loadEditor(t *testing.T) *EditorModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serverconfig.xml")
	if err := os.WriteFile(path, []byte(editorFixture), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	doc, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	e := NewEditorModel(doc, settings.DefaultSettings())
	e.SetSize(120, 40)
	return e
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBuildRows(t *testing.T) {
	e := loadEditor(t)

	general := e.rows[catalog.General]
	if len(general) != 2 || general[0] != "ServerName" || general[1] != "ServerPort" {
		t.Errorf("Unexpected General rows: %v", general)
	}

	zombies := e.rows[catalog.Zombies]
	if len(zombies) != 1 || zombies[0] != "BloodMoonFrequency" {
		t.Errorf("Unexpected Zombies rows: %v", zombies)
	}

	// Properties the catalog does not know land under Other instead of
	// disappearing.
	other := e.rows[catalog.Other]
	if len(other) != 1 || other[0] != "SomeModSetting" {
		t.Errorf("Unexpected Other rows: %v", other)
	}
}

func TestTypingEditsFocusedProperty(t *testing.T) {
	e := loadEditor(t)

	// Focus starts on the first General row, ServerName, with the cursor at
	// the end of the value.
	e.Update(keyRunes("X"))

	value, err := e.doc.Get("ServerName")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !strings.Contains(value, "X") {
		t.Errorf("Expected typed rune applied to the document, got %q", value)
	}
	if !e.doc.IsDirty() {
		t.Error("Editing a field should dirty the document")
	}
}

func TestSearchJumpsToMatch(t *testing.T) {
	e := loadEditor(t)

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	if !e.searchFocused {
		t.Fatal("ctrl+f should focus the search bar")
	}

	e.Update(keyRunes("zombie"))

	if got := e.matchCounter(); got != "1 of 1" {
		t.Errorf("Expected counter %q, got %q", "1 of 1", got)
	}
	if e.tabs[e.activeTab] != catalog.Zombies {
		t.Errorf("Expected jump to the Zombies tab, got %s", e.tabs[e.activeTab])
	}
	name, _ := e.focusedName()
	if name != "BloodMoonFrequency" {
		t.Errorf("Expected focus on the match, got %q", name)
	}
}

func TestSearchNoResults(t *testing.T) {
	e := loadEditor(t)

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	e.Update(keyRunes("qqqq"))

	if got := e.matchCounter(); got != "No results" {
		t.Errorf("Expected %q, got %q", "No results", got)
	}
}

func TestMatchNavigationWrapsAround(t *testing.T) {
	e := loadEditor(t)

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	e.Update(keyRunes("server"))

	// ServerName, ServerPort by name; BloodMoonFrequency does not mention
	// "server" in its comment.
	if len(e.searchState.Matches) != 2 {
		t.Fatalf("Expected 2 matches, got %v", e.searchState.Matches)
	}

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	name, _ := e.searchState.CurrentName()
	if name != "ServerPort" {
		t.Errorf("Expected next match ServerPort, got %q", name)
	}

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	name, _ = e.searchState.CurrentName()
	if name != "ServerName" {
		t.Errorf("Expected wraparound to ServerName, got %q", name)
	}
}

func TestClearSearchRestoresUnfilteredState(t *testing.T) {
	e := loadEditor(t)

	e.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	e.Update(keyRunes("zombie"))
	e.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if e.searchFocused || e.searchInput.Value() != "" {
		t.Error("esc should clear the search")
	}
	if len(e.searchState.Matches) != 0 {
		t.Error("Cleared search should have no matches")
	}
}

func TestQuitConfirmsWhenDirty(t *testing.T) {
	e := loadEditor(t)

	e.doc.Set("ServerName", "Changed")
	e.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if !e.confirm.Active {
		t.Fatal("Quitting with unsaved changes should ask for confirmation")
	}

	// Declining keeps the editor running.
	cmd := e.Update(keyRunes("n"))
	if cmd != nil {
		t.Error("Declining the prompt should not quit")
	}
	if e.confirm.Active {
		t.Error("Prompt should clear after answering")
	}
}

func TestBuildDebugInfo(t *testing.T) {
	e := loadEditor(t)

	info := BuildDebugInfo(e.doc)

	if !strings.Contains(info, e.doc.Path) {
		t.Error("Debug info should name the config file")
	}
	if !strings.Contains(info, "Properties: 4") {
		t.Errorf("Debug info should report the property count: %q", info)
	}
}
