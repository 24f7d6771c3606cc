package grid

import (
	"strings"
	"testing"
)

func TestRecompute(t *testing.T) {
	text := "ａｂｃ\n" + strings.Repeat("あ", 12)
	v := Recompute(text, len([]rune(text)), Params{CharsPerLine: 10, MaxChars: 45})

	if got := len(v.Lines); got != 3 {
		t.Fatalf("virtual lines: got %d, want 3", got)
	}
	if v.Rows != 5 {
		t.Fatalf("rows: got %d, want 5", v.Rows)
	}
	if v.Cursor != (Cell{Row: 2, Col: 2}) {
		t.Fatalf("cursor: got %+v", v.Cursor)
	}
	if !v.CaretCountVisible || v.CaretCount != 12 {
		t.Fatalf("caret count: got (%d,%v), want (12,true)", v.CaretCount, v.CaretCountVisible)
	}
	if len(v.Disabled) != 5 || !v.IsDisabled(Cell{Row: 4, Col: 9}) || v.IsDisabled(Cell{Row: 4, Col: 4}) {
		t.Fatalf("disabled cells: got %+v", v.Disabled)
	}
	if v.LimitReached {
		t.Fatalf("2 lines should not reach a 5 line limit")
	}
}

func TestRecompute_CaretCountHiddenOnRowBoundary(t *testing.T) {
	text := strings.Repeat("x", 20)
	v := Recompute(text, 20, Params{CharsPerLine: 10, MaxChars: 400})
	if v.CaretCountVisible {
		t.Fatalf("caret count at a row boundary should be hidden")
	}
	if v.Cursor != (Cell{Row: 2, Col: 0}) {
		t.Fatalf("cursor: got %+v", v.Cursor)
	}
	if v.Rows != 40 {
		t.Fatalf("rows: got %d, want 40", v.Rows)
	}
}

func TestRecompute_NormalizesParams(t *testing.T) {
	v := Recompute("", 0, Params{})
	if v.Params.CharsPerLine != DefaultCharsPerLine || v.Params.MaxChars != DefaultMaxChars {
		t.Fatalf("params: got %+v", v.Params)
	}
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats("ab　c\n\n"+strings.Repeat("x", 11), 10)
	want := Stats{Chars: 17, NonSpace: 14, Lines: 3, GridLines: 4}
	if st != want {
		t.Fatalf("stats: got %+v, want %+v", st, want)
	}
}

func TestValidCharsPerLineAndClamp(t *testing.T) {
	for _, n := range []int{10, 20, 40, 80} {
		if !ValidCharsPerLine(n) {
			t.Fatalf("%d should be valid", n)
		}
	}
	if ValidCharsPerLine(30) {
		t.Fatalf("30 should be invalid")
	}
	if ClampMaxChars(0) != 1 || ClampMaxChars(5000) != 2000 || ClampMaxChars(45) != 45 {
		t.Fatalf("ClampMaxChars out of range")
	}
}
