package buffer

import "testing"

func TestMove(t *testing.T) {
	b := New("abc\nd\nefgh", Options{})

	steps := []struct {
		move Move
		want Pos
	}{
		{move: Move{Unit: MoveRune, Dir: DirRight}, want: Pos{Row: 0, Col: 1}},
		{move: Move{Unit: MoveLine, Dir: DirEnd}, want: Pos{Row: 0, Col: 3}},
		{move: Move{Unit: MoveRune, Dir: DirRight}, want: Pos{Row: 1, Col: 0}},
		{move: Move{Unit: MoveRune, Dir: DirLeft}, want: Pos{Row: 0, Col: 3}},
		{move: Move{Unit: MoveLine, Dir: DirDown}, want: Pos{Row: 1, Col: 1}},
		{move: Move{Unit: MoveRune, Dir: DirDown}, want: Pos{Row: 2, Col: 1}},
		{move: Move{Unit: MoveDoc, Dir: DirEnd}, want: Pos{Row: 2, Col: 4}},
		{move: Move{Unit: MoveLine, Dir: DirHome}, want: Pos{Row: 2, Col: 0}},
		{move: Move{Unit: MoveDoc, Dir: DirHome}, want: Pos{Row: 0, Col: 0}},
		{move: Move{Unit: MoveRune, Dir: DirLeft}, want: Pos{Row: 0, Col: 0}},
	}
	for i, s := range steps {
		b.Move(s.move)
		if got := b.Cursor(); got != s.want {
			t.Fatalf("step %d: got %v, want %v", i, got, s.want)
		}
	}
}

func TestMove_NoOpKeepsVersion(t *testing.T) {
	b := New("a", Options{})
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if b.Version() != 0 {
		t.Fatalf("version after no-op move: got %d", b.Version())
	}
}
