package editor

// Config configures the editor Model.
type Config struct {
	KeyMap KeyMap
	Style  Style

	// ShowRowNumbers draws a gutter with grid row numbers in grid mode and
	// physical line numbers otherwise.
	ShowRowNumbers bool
	// ShowStats draws a status line with the section counters under the
	// grid.
	ShowStats bool

	// Clipboard backs the copy and paste bindings. Nil disables them.
	Clipboard Clipboard
}

func (c Config) withDefaults() Config {
	if len(c.KeyMap.Enter.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
