package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type confirmKind int

const (
	confirmDelete confirmKind = iota + 1
	confirmImport
)

// confirmDialog asks a yes/no question before a destructive action. arg is
// the section id for deletes.
type confirmDialog struct {
	kind    confirmKind
	arg     string
	message string
}

type promptKind int

const (
	promptRename promptKind = iota + 1
	promptDocTitle
	promptImport
)

func newPrompt(label, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = label + ": "
	in.CharLimit = 200
	in.Width = 48
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return in
}

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("203")).
	Padding(0, 2)

func (d confirmDialog) view() string {
	return dialogStyle.Render(d.message + "\n\n[y] はい   [n] いいえ")
}

// compositeCentered draws fg over the middle of bg.
func compositeCentered(fg, bg string, width, height int) string {
	x := (width - lipgloss.Width(fg)) / 2
	y := (height - lipgloss.Height(fg)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlay.Composite(fg, bg, overlay.Left, overlay.Top, x, y)
}
