package controller

import (
	"fmt"

	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/section"
)

// Sections returns the sections in document order. The slice is a copy;
// the sections are shared.
func (c *Controller) Sections() []*section.Section {
	return append([]*section.Section(nil), c.sections...)
}

func (c *Controller) Len() int { return len(c.sections) }

// Section returns the section with id.
func (c *Controller) Section(id string) (*section.Section, error) {
	i := c.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	return c.sections[i], nil
}

// Index returns the position of the section with id, or -1.
func (c *Controller) Index(id string) int { return c.index(id) }

func (c *Controller) index(id string) int {
	for i, s := range c.sections {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// AddSection appends an empty section titled after its position.
func (c *Controller) AddSection() (*section.Section, error) {
	if !c.settings.EditableStructure {
		return nil, section.ErrStructureLocked
	}
	s := section.New(essay.NewSection(len(c.sections)+1), c.settings, c.callbacks())
	c.sections = append(c.sections, s)
	c.modified = true
	c.log.Debug("section added", "id", s.ID(), "sections", len(c.sections))
	return s, nil
}

// DeleteSection removes the section with id. The last remaining section
// cannot be deleted.
func (c *Controller) DeleteSection(id string) error {
	if !c.settings.EditableStructure {
		return section.ErrStructureLocked
	}
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	if len(c.sections) == 1 {
		return ErrLastSection
	}
	c.sections = append(c.sections[:i], c.sections[i+1:]...)
	c.modified = true
	c.log.Debug("section deleted", "id", id, "sections", len(c.sections))
	return nil
}

// MoveSection moves the section with id by delta positions, clamped to the
// ends of the list.
func (c *Controller) MoveSection(id string, delta int) error {
	if !c.settings.EditableStructure {
		return section.ErrStructureLocked
	}
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	j := i + delta
	if j < 0 {
		j = 0
	}
	if j >= len(c.sections) {
		j = len(c.sections) - 1
	}
	if i == j {
		return nil
	}
	s := c.sections[i]
	c.sections = append(c.sections[:i], c.sections[i+1:]...)
	c.sections = append(c.sections[:j], append([]*section.Section{s}, c.sections[j:]...)...)
	c.modified = true
	return nil
}

// RenameSection sets the title of the section with id.
func (c *Controller) RenameSection(id, title string) error {
	s, err := c.Section(id)
	if err != nil {
		return err
	}
	return s.SetTitle(title)
}
