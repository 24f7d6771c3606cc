package editor

import tea "github.com/charmbracelet/bubbletea"

// CaretFlushMsg asks the editor showing SectionID to apply the caret
// position held back by the last normalizing input. The editor returns a
// command producing it after such an input; hosts only need to route it
// back to Update.
type CaretFlushMsg struct {
	SectionID string
}

// RejectedMsg reports an input the section refused or a clipboard failure.
type RejectedMsg struct {
	SectionID string
	Err       error
}

func flushCaretCmd(id string) tea.Cmd {
	return func() tea.Msg { return CaretFlushMsg{SectionID: id} }
}

func rejectedCmd(id string, err error) tea.Cmd {
	return func() tea.Msg { return RejectedMsg{SectionID: id, Err: err} }
}
