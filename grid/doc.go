// Package grid computes the manuscript-paper layout of a text: how physical
// (newline-delimited) lines fold into virtual rows of a fixed number of
// cells, which rows carry a character count and which carry a continuation
// marker, where the caret sits, and which cells lie past the character
// budget.
//
// Every function is pure and runs in O(len(text)). Lengths and offsets are
// UTF-16 code units.
//
// Overflow policy: each physical line is laid out on its own. A line of
// length L occupies max(1, ceil(L/CharsPerLine)) rows; all but the last are
// carry-over rows and the last shows L. Merging consecutive full lines into
// one counted run is not implemented.
package grid
