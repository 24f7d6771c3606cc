// Package fullwidth converts between half-width printable ASCII and its
// full-width counterparts used on manuscript grid paper.
//
// Offsets and lengths are counted in UTF-16 code units so that caret
// positions agree with the text controls hosting the editor.
package fullwidth
