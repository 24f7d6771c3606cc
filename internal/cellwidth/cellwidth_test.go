package cellwidth

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "", want: 0},
		{in: "a", want: 1},
		{in: "ａ", want: 2},
		{in: "原稿", want: 4},
		{in: "　", want: 2},
	}
	for _, tc := range cases {
		if got := Width(tc.in); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCell(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: "  "},
		{in: "a", want: "a "},
		{in: "字", want: "字"},
		{in: "abc", want: "ab"},
	}
	for _, tc := range cases {
		if got := Cell(tc.in); got != tc.want {
			t.Fatalf("Cell(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
