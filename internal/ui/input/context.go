package input

import (
	"pixels/internal/gallery"
	"pixels/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Session *gallery.Session
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of loaded images
func (c *ModelContext) TotalItems() int {
	return c.Session.Len()
}

// HasImages returns true if at least one image is loaded
func (c *ModelContext) HasImages() bool {
	return c.Session.Len() > 0
}

// SearchText returns the text in the search bar
func (c *ModelContext) SearchText() string {
	return c.Session.SearchText()
}

// CategoryCursor returns the highlighted category
func (c *ModelContext) CategoryCursor() int {
	return c.State.CategoryCursor
}

// ActiveCategory returns the selected category, if any
func (c *ModelContext) ActiveCategory() string {
	return c.Session.Category()
}

// FilterCount returns the number of active filter chips
func (c *ModelContext) FilterCount() int {
	return len(c.Session.Filters())
}

// ActiveFilter returns the applied value of a filter
func (c *ModelContext) ActiveFilter(key string) string {
	return c.Session.Filters()[key]
}

// PendingFilter returns the value picked in the filters modal
func (c *ModelContext) PendingFilter(key string) string {
	return c.Session.Pending()[key]
}
