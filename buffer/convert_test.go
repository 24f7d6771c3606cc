package buffer

import "testing"

func TestOffsetConversions(t *testing.T) {
	b := New("ab\n😀c\n", Options{})
	if got := b.Len(); got != 7 {
		t.Fatalf("len: got %d, want 7", got)
	}

	cases := []struct {
		off  int
		want Pos
	}{
		{off: -3, want: Pos{Row: 0, Col: 0}},
		{off: 0, want: Pos{Row: 0, Col: 0}},
		{off: 2, want: Pos{Row: 0, Col: 2}},
		{off: 3, want: Pos{Row: 1, Col: 0}},
		{off: 4, want: Pos{Row: 1, Col: 0}}, // inside the surrogate pair
		{off: 5, want: Pos{Row: 1, Col: 1}},
		{off: 6, want: Pos{Row: 1, Col: 2}},
		{off: 7, want: Pos{Row: 2, Col: 0}},
		{off: 99, want: Pos{Row: 2, Col: 0}},
	}
	for _, tc := range cases {
		if got := b.PosFromOffset(tc.off); got != tc.want {
			t.Fatalf("PosFromOffset(%d): got %v, want %v", tc.off, got, tc.want)
		}
	}

	for _, p := range []Pos{{0, 0}, {0, 2}, {1, 1}, {1, 2}, {2, 0}} {
		off := b.OffsetFromPos(p)
		if back := b.PosFromOffset(off); back != p {
			t.Fatalf("round trip %v -> %d -> %v", p, off, back)
		}
	}
}

func TestCursorOffset(t *testing.T) {
	b := New("原稿\n用紙", Options{})
	b.SetCursorOffset(4)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor: got %v", got)
	}
	if got := b.CursorOffset(); got != 4 {
		t.Fatalf("cursor offset: got %d", got)
	}
}
