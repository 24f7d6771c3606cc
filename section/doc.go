// Package section implements the editing behavior of one essay section.
//
// A Section owns a buffer.Buffer and drives it from whole-value input
// events: the caller reports the field's new text and caret, and the
// section normalizes it to full width (grid mode, outside a composition
// session), enforces the line budget, and records the caret to restore.
//
// Normalization replaces the text in one step and restores the caret in a
// second one. After an input that changed the text, PendingCaret reports
// the caret to apply and FlushCaret applies it; a UI calls FlushCaret on
// its next update turn, after the new text has been rendered.
package section
