package grid

const (
	DefaultCharsPerLine = 40
	DefaultMaxChars     = 400

	MinMaxChars = 1
	MaxMaxChars = 2000
)

// CharsPerLineOptions lists the grid widths offered to the user.
var CharsPerLineOptions = []int{10, 20, 40, 80}

// Params describes one grid.
type Params struct {
	CharsPerLine int
	MaxChars     int
}

// Normalize fills zero or negative fields with defaults.
func (p Params) Normalize() Params {
	if p.CharsPerLine <= 0 {
		p.CharsPerLine = DefaultCharsPerLine
	}
	if p.MaxChars <= 0 {
		p.MaxChars = DefaultMaxChars
	}
	return p
}

// ValidCharsPerLine reports whether n is one of CharsPerLineOptions.
func ValidCharsPerLine(n int) bool {
	for _, v := range CharsPerLineOptions {
		if v == n {
			return true
		}
	}
	return false
}

// ClampMaxChars clamps a custom budget into [MinMaxChars, MaxMaxChars].
func ClampMaxChars(n int) int {
	if n < MinMaxChars {
		return MinMaxChars
	}
	if n > MaxMaxChars {
		return MaxMaxChars
	}
	return n
}

// MaxLines is the number of grid rows the budget allows:
// ceil(maxChars/charsPerLine).
func MaxLines(maxChars, charsPerLine int) int {
	if charsPerLine <= 0 || maxChars <= 0 {
		return 0
	}
	return ceilDiv(maxChars, charsPerLine)
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
