// Package controller owns an essay document while it is edited: the
// ordered sections, the document-wide settings and scoring. It orchestrates
// structure edits, import and export through the essay codec, and
// submission through an injected Submitter.
//
// A Controller is driven from a single goroutine (the UI loop). Only Send
// may be called from elsewhere; it touches no document state.
package controller
