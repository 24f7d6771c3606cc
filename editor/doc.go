// Package editor provides a Bubble Tea component that edits one essay
// section on a manuscript grid.
//
// The component owns no text. Every edit goes through the section package,
// which normalizes input and enforces the line budget; the editor renders the
// section's layout, routes keys and mouse clicks, and schedules the deferred
// caret placement that follows a normalizing input.
package editor
