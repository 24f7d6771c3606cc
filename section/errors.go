package section

import "errors"

var (
	// ErrReadOnly rejects a content edit while editing is disabled.
	ErrReadOnly = errors.New("section is read-only")
	// ErrLineLimit rejects an edit that would add a line past the budget.
	ErrLineLimit = errors.New("line limit reached")
	// ErrStructureLocked rejects a title change while the structure is
	// locked.
	ErrStructureLocked = errors.New("section structure is locked")
)
