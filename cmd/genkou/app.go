package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/genkou/controller"
	"github.com/iw2rmb/genkou/editor"
	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/section"
)

const (
	submitTimeout = 60 * time.Second
	untitled      = "無題の小論文"
)

// submittedMsg carries the outcome of a background submission.
type submittedMsg struct {
	doc essay.Document
	err error
}

type app struct {
	ctl    *controller.Controller
	editor editor.Model
	keys   appKeyMap
	log    *slog.Logger
	outDir string

	width, height int
	current       int

	prompt     textinput.Model
	promptKind promptKind
	confirm    *confirmDialog

	submitting bool
	status     string
}

func newApp(ctl *controller.Controller, edCfg editor.Config, outDir string, log *slog.Logger) app {
	a := app{
		ctl:    ctl,
		keys:   defaultAppKeyMap(),
		log:    log,
		outDir: outDir,
	}
	a.editor = editor.New(ctl.Sections()[0], edCfg)
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.editor = a.editor.SetSize(msg.Width, a.editorHeight())
		return a, nil
	case submittedMsg:
		return a.finishSubmit(msg), nil
	case editor.RejectedMsg:
		a.status = rejectionText(msg.Err)
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.confirm != nil {
			return a.updateConfirm(msg)
		}
		if a.promptKind != 0 {
			return a.updatePrompt(msg)
		}
		if next, cmd, ok := a.updateAppKey(msg); ok {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) updateAppKey(msg tea.KeyMsg) (app, tea.Cmd, bool) {
	k := a.keys
	cur := a.currentSection()
	switch {
	case key.Matches(msg, k.NextSection):
		a.selectSection(a.current + 1)
	case key.Matches(msg, k.PrevSection):
		a.selectSection(a.current - 1)
	case key.Matches(msg, k.MoveUp), key.Matches(msg, k.MoveDown):
		delta := -1
		if key.Matches(msg, k.MoveDown) {
			delta = 1
		}
		if err := a.ctl.MoveSection(cur.ID(), delta); err != nil {
			a.status = err.Error()
			break
		}
		a.selectSection(a.ctl.Index(cur.ID()))
	case key.Matches(msg, k.AddSection):
		sec, err := a.ctl.AddSection()
		if err != nil {
			a.status = err.Error()
			break
		}
		a.selectSection(a.ctl.Index(sec.ID()))
	case key.Matches(msg, k.Delete):
		if !a.ctl.Settings().EditableStructure {
			a.status = section.ErrStructureLocked.Error()
			break
		}
		a.confirm = &confirmDialog{
			kind:    confirmDelete,
			arg:     cur.ID(),
			message: fmt.Sprintf("「%s」を削除しますか?", cur.Title()),
		}
	case key.Matches(msg, k.Rename):
		a.openPrompt(promptRename, "セクション名", cur.Title())
	case key.Matches(msg, k.DocTitle):
		a.openPrompt(promptDocTitle, "タイトル", a.ctl.Title())

	case key.Matches(msg, k.ToggleGrid):
		a.ctl.SetGridMode(!a.ctl.Settings().GridMode)
	case key.Matches(msg, k.CycleWidth):
		if err := a.ctl.SetCharsPerLine(nextOption(grid.CharsPerLineOptions, a.ctl.Settings().CharsPerLine)); err != nil {
			a.status = err.Error()
		}
	case key.Matches(msg, k.CycleBudget):
		cur.SetMaxChars(nextOption(section.MaxCharsOptions, cur.MaxChars()))
	case key.Matches(msg, k.ToggleEditable):
		a.ctl.SetEditable(!a.ctl.Settings().Editable)
	case key.Matches(msg, k.ToggleStructure):
		a.ctl.SetEditableStructure(!a.ctl.Settings().EditableStructure)

	case key.Matches(msg, k.Import):
		a.confirm = &confirmDialog{
			kind:    confirmImport,
			message: "現在の内容は破棄されます。ファイルを読み込みますか?",
		}
	case key.Matches(msg, k.ExportJSON):
		a.export(essay.FormatJSON)
	case key.Matches(msg, k.ExportYAML):
		a.export(essay.FormatYAML)
	case key.Matches(msg, k.Text):
		a.exportPlainText()
	case key.Matches(msg, k.Submit):
		if a.submitting {
			a.status = "送信中です"
			break
		}
		a.submitting = true
		a.status = "送信中..."
		return a, a.submitCmd(a.ctl.Document()), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a app) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := *a.confirm
	switch msg.String() {
	case "y", "Y", "enter":
		a.confirm = nil
		switch d.kind {
		case confirmDelete:
			if err := a.ctl.DeleteSection(d.arg); err != nil {
				a.status = err.Error()
			} else {
				a.selectSection(a.current)
			}
		case confirmImport:
			a.openPrompt(promptImport, "読み込むファイル", "")
		}
	case "n", "N", "esc":
		a.confirm = nil
	}
	return a, nil
}

func (a app) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive
	case tea.KeyEsc:
		a.promptKind = 0
		return a, nil
	case tea.KeyEnter:
		kind, value := a.promptKind, strings.TrimSpace(a.prompt.Value())
		a.promptKind = 0
		a.submitPrompt(kind, value)
		return a, nil
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a *app) submitPrompt(kind promptKind, value string) {
	switch kind {
	case promptRename:
		if err := a.ctl.RenameSection(a.currentSection().ID(), value); err != nil {
			a.status = err.Error()
		}
	case promptDocTitle:
		a.ctl.SetTitle(value)
	case promptImport:
		if value == "" {
			return
		}
		a.importFile(value)
	}
}

func (a *app) openPrompt(kind promptKind, label, value string) {
	a.promptKind = kind
	a.prompt = newPrompt(label, value)
}

func (a *app) currentSection() *section.Section {
	secs := a.ctl.Sections()
	if a.current >= len(secs) {
		a.current = len(secs) - 1
	}
	return secs[a.current]
}

// selectSection shows the section at index i, clamped to the list.
func (a *app) selectSection(i int) {
	n := a.ctl.Len()
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	a.current = i
	a.editor = a.editor.SetSection(a.ctl.Sections()[i])
}

func (a *app) importFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		a.status = fmt.Sprintf("%v: %v", essay.ErrUnreadableFile, err)
		return
	}
	defer f.Close()

	if err := a.ctl.Import(f, essay.FormatForPath(path)); err != nil {
		a.status = err.Error()
		return
	}
	a.selectSection(0)
	a.status = "読み込みました: " + path
}

func (a *app) export(f essay.Format) {
	data, err := a.ctl.Export(f)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.writeFile(f.FileName(), data)
}

func (a *app) exportPlainText() {
	text, err := a.ctl.PlainText(a.currentSection().ID())
	if err != nil {
		a.status = err.Error()
		return
	}
	a.writeFile(essay.PlainTextFileName, []byte(text))
}

func (a *app) writeFile(name string, data []byte) {
	path := filepath.Join(a.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		a.log.Error("write failed", "path", path, "err", err)
		a.status = err.Error()
		return
	}
	a.status = "保存しました: " + path
}

// submitCmd sends a snapshot of the document off the event loop.
func (a app) submitCmd(doc essay.Document) tea.Cmd {
	ctl := a.ctl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		resp, err := ctl.Send(ctx, doc)
		return submittedMsg{doc: resp, err: err}
	}
}

func (a app) finishSubmit(msg submittedMsg) app {
	a.submitting = false
	if msg.err != nil {
		a.status = "送信に失敗しました: " + msg.err.Error()
		return a
	}
	a.ctl.Replace(msg.doc)
	a.selectSection(0)
	a.status = "送信しました"
	return a
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, section.ErrLineLimit):
		return "行数の上限に達しました"
	case errors.Is(err, section.ErrReadOnly):
		return "閲覧のみです"
	default:
		return err.Error()
	}
}

// nextOption returns the option after cur, wrapping around. A value not in
// opts moves to the first option.
func nextOption(opts []int, cur int) int {
	for i, v := range opts {
		if v == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// Rows around the editor: two header lines, the prompt and the help line.
const chromeRows = 4

func (a app) editorHeight() int {
	h := a.height - chromeRows
	if h < 0 {
		return 0
	}
	return h
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeTab   = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
)

func (a app) View() string {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")
	b.WriteString(a.tabsView())
	b.WriteString("\n")
	b.WriteString(a.editor.View())
	b.WriteString("\n")
	if a.promptKind != 0 {
		b.WriteString(a.prompt.View())
	} else {
		b.WriteString(statusStyle.Render(a.status))
	}
	b.WriteString("\n")
	b.WriteString(a.helpView())

	view := b.String()
	if a.confirm != nil {
		view = compositeCentered(a.confirm.view(), view, a.width, a.height)
	}
	return view
}

func (a app) headerView() string {
	st := a.ctl.Settings()
	title := a.ctl.Title()
	if title == "" {
		title = untitled
	}
	if a.ctl.Modified() {
		title += " *"
	}
	flags := []string{fmt.Sprintf("%d字/行", st.CharsPerLine)}
	if st.GridMode {
		flags = append(flags, "原稿用紙")
	} else {
		flags = append(flags, "通常")
	}
	if !st.Editable {
		flags = append(flags, "閲覧のみ")
	}
	if !st.EditableStructure {
		flags = append(flags, "構成固定")
	}
	if sc := a.currentSection().Scoring(); !sc.IsZero() {
		flags = append(flags, scoringText(sc))
	}
	return titleStyle.Render(title) + "  " + tabStyle.Render(strings.Join(flags, " · "))
}

func scoringText(sc essay.Scoring) string {
	maxPoints := "-"
	if sc.MaxPoints != nil {
		maxPoints = fmt.Sprint(*sc.MaxPoints)
	}
	if sc.Points == nil {
		return "配点" + maxPoints
	}
	return fmt.Sprintf("%d/%s点", *sc.Points, maxPoints)
}

func (a app) tabsView() string {
	secs := a.ctl.Sections()
	tabs := make([]string, 0, len(secs))
	for i, s := range secs {
		label := fmt.Sprintf(" %d:%s(%d字) ", i+1, s.Title(), s.MaxChars())
		if i == a.current {
			tabs = append(tabs, activeTab.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return strings.Join(tabs, "")
}

func (a app) helpView() string {
	bindings := a.keys.shortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}
