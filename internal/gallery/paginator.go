package gallery

// Paginator tracks the current page of one query context and the end-reached
// latch that keeps a single bottom dwell from firing more than one fetch.
type Paginator struct {
	page       int
	endReached bool
}

// NewPaginator returns a paginator on page 1
func NewPaginator() *Paginator {
	return &Paginator{page: 1}
}

// Page returns the last requested page
func (p *Paginator) Page() int {
	return p.page
}

// EndReached reports whether the latch is set
func (p *Paginator) EndReached() bool {
	return p.endReached
}

// AtBottom handles a "scrolled to bottom" trigger. The first call after the
// latch was cleared advances the page and returns it with ok set.
func (p *Paginator) AtBottom() (page int, ok bool) {
	if p.endReached {
		return p.page, false
	}
	p.endReached = true
	p.page++
	return p.page, true
}

// AwayFromBottom clears the latch; it never fetches
func (p *Paginator) AwayFromBottom() {
	p.endReached = false
}

// Reset returns to page 1 with the latch cleared
func (p *Paginator) Reset() {
	p.page = 1
	p.endReached = false
}
