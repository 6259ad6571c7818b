package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
)

const nameColumnWidth = 36

func (e *EditorModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("7 Days to Die Server Config Editor"))
	b.WriteString("\n")
	b.WriteString(e.renderTabs())
	b.WriteString("\n")
	b.WriteString(e.renderSearchBar())
	b.WriteString("\n\n")

	e.viewport.SetContent(e.renderRows())
	b.WriteString(e.viewport.View())
	b.WriteString("\n\n")

	b.WriteString(e.renderDescription())
	b.WriteString("\n")
	b.WriteString(e.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: category • ↑/↓: field • ctrl+f: search • ctrl+n/b: next/prev match • ctrl+s: save • ctrl+r: reload • ctrl+o: settings • ctrl+d: debug info • ctrl+c: quit"))

	return b.String()
}

func (e *EditorModel) renderTabs() string {
	var tabs []string
	for i, cat := range e.tabs {
		label := fmt.Sprintf("%s (%d)", cat, len(e.rows[cat]))
		if i == e.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (e *EditorModel) renderSearchBar() string {
	bar := "🔍 " + e.searchInput.View()
	if counter := e.matchCounter(); counter != "" {
		bar += "  " + counterStyle.Render(counter)
	}
	return bar
}

// matchCounter renders "3 of 7" for the current match, as the original
// editor's result counter did.
func (e *EditorModel) matchCounter() string {
	if e.searchInput.Value() == "" {
		return ""
	}
	if len(e.searchState.Matches) == 0 {
		return "No results"
	}
	return fmt.Sprintf("%d of %d", e.searchState.Current+1, len(e.searchState.Matches))
}

func (e *EditorModel) renderRows() string {
	rows := e.activeRows()
	if len(rows) == 0 {
		return helpStyle.Render("No properties in this category")
	}

	currentMatch, _ := e.searchState.CurrentName()

	var lines []string
	for i, name := range rows {
		nameLabel := padName(name)
		switch {
		case name == currentMatch:
			nameLabel = matchStyle.Render(nameLabel)
		case i == e.focusRow && !e.searchFocused:
			nameLabel = focusedNameStyle.Render(nameLabel)
		default:
			nameLabel = propNameStyle.Render(nameLabel)
		}

		cursor := "  "
		if i == e.focusRow {
			cursor = "› "
		}

		lines = append(lines, cursor+nameLabel+" "+e.inputs[name].View())
	}
	return strings.Join(lines, "\n")
}

func (e *EditorModel) renderDescription() string {
	if !e.prefs.UI.ShowDescriptions {
		return ""
	}

	name, ok := e.focusedName()
	if !ok {
		return descStyle.Render("—")
	}

	desc := catalog.Describe(name, e.doc)
	if desc == "" {
		desc = "No description available."
	}

	width := e.width - 4
	if width < 20 {
		width = 20
	}
	return descStyle.Width(width).Render(wordwrap.String(desc, width-2))
}

func (e *EditorModel) renderStatus() string {
	if e.confirm.Active {
		return statusStyle.Render(e.confirm.Prompt + " [y/n]")
	}

	status := e.status
	if e.doc.IsDirty() {
		status += "  " + dirtyStyle.Render("● unsaved changes")
	}
	return statusStyle.Render(status)
}

func padName(name string) string {
	if len(name) >= nameColumnWidth {
		return name
	}
	return name + strings.Repeat(" ", nameColumnWidth-len(name))
}
