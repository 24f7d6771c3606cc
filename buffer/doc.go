// Package buffer implements the plain-text model behind one essay section.
//
// The text is stored as logical (newline-delimited) lines; wrapping onto the
// grid is never stored, it is derived by the grid package.
//
// Coordinates are 0-based (Row, Col) with Col in runes. Offsets exchanged
// with hosts are UTF-16 code units over the whole text, newlines counting
// as one unit.
package buffer
