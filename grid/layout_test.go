package grid

import (
	"reflect"
	"strings"
	"testing"
)

func TestLineCharCounts_OverflowingLine(t *testing.T) {
	text := strings.Repeat("あ", 85)
	got := LineCharCounts(text, 40)

	if want := []int{0, 1}; !reflect.DeepEqual(got.CarryOver, want) {
		t.Fatalf("carry-over rows: got %v, want %v", got.CarryOver, want)
	}
	if want := []LineCount{{VirtualLine: 2, Count: 85}}; !reflect.DeepEqual(got.Counts, want) {
		t.Fatalf("counts: got %v, want %v", got.Counts, want)
	}
}

func TestLineCharCounts_MixedLines(t *testing.T) {
	text := strings.Join([]string{
		strings.Repeat("a", 3),
		"",
		strings.Repeat("b", 10),
		strings.Repeat("c", 11),
	}, "\n")
	got := LineCharCounts(text, 10)

	wantCounts := []LineCount{
		{VirtualLine: 0, Count: 3},
		{VirtualLine: 2, Count: 10},
		{VirtualLine: 4, Count: 11},
	}
	if !reflect.DeepEqual(got.Counts, wantCounts) {
		t.Fatalf("counts: got %v, want %v", got.Counts, wantCounts)
	}
	if want := []int{3}; !reflect.DeepEqual(got.CarryOver, want) {
		t.Fatalf("carry-over rows: got %v, want %v", got.CarryOver, want)
	}
}

func TestVirtualLines_EmptyTextIsOneEmptyRow(t *testing.T) {
	got := VirtualLines("", 40)
	want := []VirtualLine{{Index: 0, Kind: RowEmpty, Line: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("virtual lines: got %+v, want %+v", got, want)
	}
}

func TestVirtualLines_Segments(t *testing.T) {
	got := VirtualLines("abcde\nxy", 2)
	want := []VirtualLine{
		{Index: 0, Kind: RowCarryOver, Line: 0, Start: 0, End: 2},
		{Index: 1, Kind: RowCarryOver, Line: 0, Start: 2, End: 4},
		{Index: 2, Kind: RowCounted, Line: 0, Start: 4, End: 5, Count: 5},
		{Index: 3, Kind: RowCounted, Line: 1, Start: 0, End: 2, Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("virtual lines:\n got %+v\nwant %+v", got, want)
	}
}

func TestLineCharCounts_ExactWidthIsNotCarryOver(t *testing.T) {
	got := LineCharCounts(strings.Repeat("x", 40), 40)
	if len(got.CarryOver) != 0 {
		t.Fatalf("carry-over rows: got %v, want none", got.CarryOver)
	}
	if want := []LineCount{{VirtualLine: 0, Count: 40}}; !reflect.DeepEqual(got.Counts, want) {
		t.Fatalf("counts: got %v, want %v", got.Counts, want)
	}
}

func TestCursorVirtualPosition(t *testing.T) {
	text := strings.Repeat("a", 25) + "\n\n" + "bcd"
	cases := []struct {
		name  string
		caret int
		want  Cell
	}{
		{name: "start", caret: 0, want: Cell{Row: 0, Col: 0}},
		{name: "first-row", caret: 9, want: Cell{Row: 0, Col: 9}},
		{name: "wrapped", caret: 12, want: Cell{Row: 1, Col: 2}},
		{name: "end-of-long-line", caret: 25, want: Cell{Row: 2, Col: 5}},
		{name: "empty-line", caret: 26, want: Cell{Row: 3, Col: 0}},
		{name: "last-line", caret: 29, want: Cell{Row: 4, Col: 2}},
		{name: "past-end-clamps", caret: 99, want: Cell{Row: 4, Col: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CursorVirtualPosition(text, tc.caret, 10); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDisabledCells(t *testing.T) {
	got := DisabledCells(45, 40)
	if len(got) != 35 {
		t.Fatalf("disabled cell count: got %d, want 35", len(got))
	}
	for i, c := range got {
		if c.Row != 1 || c.Col != 5+i {
			t.Fatalf("cell %d: got %+v, want row 1 col %d", i, c, 5+i)
		}
	}

	if got := DisabledCells(400, 40); len(got) != 0 {
		t.Fatalf("exact budget: got %d disabled cells, want 0", len(got))
	}
	if got := DisabledCells(5, 10); len(got) != 5 || got[0] != (Cell{Row: 0, Col: 5}) {
		t.Fatalf("single row budget: got %+v", got)
	}
}

func TestLineLimitReached(t *testing.T) {
	nine := strings.Repeat("\n", 8)
	ten := strings.Repeat("\n", 9)
	if LineLimitReached(nine, 400, 40) {
		t.Fatalf("9 lines should be under a 10 line limit")
	}
	if !LineLimitReached(ten, 400, 40) {
		t.Fatalf("10 lines should reach a 10 line limit")
	}
	if !LineLimitReached("", 20, 40) {
		t.Fatalf("one line should reach a one line limit")
	}
	if got := MaxLines(400, 40); got != 10 {
		t.Fatalf("MaxLines(400,40): got %d, want 10", got)
	}
	if got := MaxLines(45, 40); got != 2 {
		t.Fatalf("MaxLines(45,40): got %d, want 2", got)
	}
}

func TestExceedsLineLimit(t *testing.T) {
	ten := strings.Repeat("\n", 9)
	eleven := ten + "\n"
	if !ExceedsLineLimit(ten, eleven, 400, 40) {
		t.Fatalf("adding an 11th line should exceed the limit")
	}
	if ExceedsLineLimit(ten, ten+"x", 400, 40) {
		t.Fatalf("typing on the last line should not exceed the limit")
	}
	twelve := eleven + "\n"
	if ExceedsLineLimit(twelve, eleven, 400, 40) {
		t.Fatalf("removing lines over the limit must be allowed")
	}
}

func TestOffsetAt(t *testing.T) {
	cases := []struct {
		name string
		text string
		cell Cell
		cpl  int
		want int
	}{
		{name: "second row", text: "abcde", cell: Cell{Row: 1, Col: 1}, cpl: 2, want: 3},
		{name: "past last segment", text: "abcde", cell: Cell{Row: 2, Col: 5}, cpl: 2, want: 5},
		{name: "past middle segment", text: "abcde", cell: Cell{Row: 0, Col: 5}, cpl: 2, want: 1},
		{name: "short line", text: "ab\ncd", cell: Cell{Row: 0, Col: 10}, cpl: 40, want: 2},
		{name: "next line", text: "ab\ncd", cell: Cell{Row: 1, Col: 1}, cpl: 40, want: 4},
		{name: "beyond layout", text: "ab\ncd", cell: Cell{Row: 9, Col: 0}, cpl: 40, want: 5},
		{name: "negative", text: "ab", cell: Cell{Row: -1, Col: -1}, cpl: 40, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OffsetAt(tc.text, tc.cell, tc.cpl); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestOffsetAt_InvertsCursorVirtualPosition(t *testing.T) {
	// No line length is a multiple of the width, so every caret has a
	// cell of its own.
	text := "あいうえお\nかきけ\n\nく"
	for off := 0; off <= 12; off++ {
		c := CursorVirtualPosition(text, off, 2)
		if got := OffsetAt(text, c, 2); got != off {
			t.Fatalf("offset %d -> %v -> %d", off, c, got)
		}
	}
}
