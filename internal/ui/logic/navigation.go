package logic

// Navigator handles selection movement and viewport management for the result list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// SetSelectedIndex sets the selected index and adjusts viewport
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = n.clamp(index)
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the selection by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize returns how far pgup/pgdn move
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 2 // Leave some overlap
	if size < 1 {
		size = 1
	}
	return size
}

// GetMaxIndex returns the maximum selectable index
func (n *Navigator) GetMaxIndex() int {
	if n.totalItems == 0 {
		return 0
	}
	return n.totalItems - 1
}

// AtLastRow reports whether the selection sits on the last loaded row
func (n *Navigator) AtLastRow() bool {
	return n.totalItems > 0 && n.selectedIndex >= n.totalItems-1
}

// HasMoreAbove reports whether rows are scrolled out above the viewport
func (n *Navigator) HasMoreAbove() bool {
	return n.viewportOffset > 0
}

// HasMoreBelow reports whether rows are scrolled out below the viewport
func (n *Navigator) HasMoreBelow() bool {
	return n.viewportOffset+n.viewportHeight < n.totalItems
}

func (n *Navigator) clamp(index int) int {
	if index > n.GetMaxIndex() {
		index = n.GetMaxIndex()
	}
	if index < 0 {
		index = 0
	}
	return index
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.viewportHeight < 1 {
		n.viewportHeight = 1
	}

	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// If selected item is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// The maximum offset should ensure we can still fill the viewport
	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
