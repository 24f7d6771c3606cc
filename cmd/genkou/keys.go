package main

import "github.com/charmbracelet/bubbles/key"

// appKeyMap holds the bindings handled by the application before keys reach
// the section editor.
type appKeyMap struct {
	Quit key.Binding

	NextSection, PrevSection key.Binding
	MoveUp, MoveDown         key.Binding
	AddSection, Delete       key.Binding
	Rename, DocTitle         key.Binding

	ToggleGrid, CycleWidth, CycleBudget key.Binding
	ToggleEditable, ToggleStructure     key.Binding

	Import                       key.Binding
	ExportJSON, ExportYAML, Text key.Binding
	Submit                       key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		NextSection: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev section")),
		MoveUp:      key.NewBinding(key.WithKeys("alt+up"), key.WithHelp("alt+↑", "move section up")),
		MoveDown:    key.NewBinding(key.WithKeys("alt+down"), key.WithHelp("alt+↓", "move section down")),
		AddSection:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add section")),
		Delete:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete section")),
		Rename:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rename section")),
		DocTitle:    key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "document title")),

		ToggleGrid:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "grid mode")),
		CycleWidth:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "chars per line")),
		CycleBudget:     key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "max characters")),
		ToggleEditable:  key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "editable")),
		ToggleStructure: key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7", "editable structure")),

		Import:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "import")),
		ExportJSON: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export json")),
		ExportYAML: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "export yaml")),
		Text:       key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "plain text")),
		Submit:     key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "submit")),
	}
}

func (k appKeyMap) shortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.AddSection, k.ToggleGrid, k.ExportJSON, k.Import, k.Submit, k.Quit}
}
