package gallery

import "pixels/internal/domain"

// Accumulator holds the fetched images in arrival order.
// It never de-duplicates and never caps its size.
type Accumulator struct {
	items []domain.Image
}

// Apply replaces the stored list with items, or appends items to it
func (a *Accumulator) Apply(items []domain.Image, mode domain.ResultMode) {
	switch mode {
	case domain.ModeAppend:
		a.items = append(a.items, items...)
	default:
		a.items = append(make([]domain.Image, 0, len(items)), items...)
	}
}

// Items returns a copy of the stored list
func (a *Accumulator) Items() []domain.Image {
	out := make([]domain.Image, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of stored images
func (a *Accumulator) Len() int {
	return len(a.items)
}

// At returns the image at index i
func (a *Accumulator) At(i int) (domain.Image, bool) {
	if i < 0 || i >= len(a.items) {
		return domain.Image{}, false
	}
	return a.items[i], true
}

// Reset empties the list
func (a *Accumulator) Reset() {
	a.items = nil
}
