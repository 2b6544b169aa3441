// Package gallery holds the browsing state of one home screen: the result list,
// paging, and the reconciliation of search text, category and filters into the
// next request.
//
// A Session is not safe for concurrent use; the UI drives it from its update loop
// and runs the returned requests elsewhere, handing results back via Deliver.
package gallery

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"pixels/internal/domain"
	"pixels/internal/imageapi"
	"pixels/internal/logging"
)

// MinSearchLength is the shortest free-text query that triggers a search.
// Shorter non-empty text is ignored.
const MinSearchLength = 3

// Request is one fetch the caller must run and hand back to Deliver
type Request struct {
	Seq        uint64
	Generation uint64
	Params     domain.SearchParams
	Mode       domain.ResultMode
}

// Session reconciles user input into paged search requests
type Session struct {
	searchText string // as typed
	query      string // last applied free-text query
	category   string
	filters    domain.FilterSet
	pending    domain.FilterSet // selection being edited in the filters modal

	pager   *Paginator
	results Accumulator

	seq        uint64
	generation uint64
	inFlight   int
	totalHits  int
	lastErr    string

	log *logrus.Entry
}

// NewSession creates an empty session on page 1
func NewSession() *Session {
	return &Session{
		filters: domain.FilterSet{},
		pending: domain.FilterSet{},
		pager:   NewPaginator(),
		log:     logging.Component("gallery"),
	}
}

// Start returns the initial fetch
func (s *Session) Start() *Request {
	return s.replace("start")
}

// Search handles debounced search text. Empty text clears the search, text of
// MinSearchLength or more runes searches for it, anything in between is inert.
// Searching always clears the active category.
func (s *Session) Search(text string) *Request {
	s.searchText = text
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		s.query = ""
		s.category = ""
		return s.replace("search cleared")
	case n >= MinSearchLength:
		s.query = text
		s.category = ""
		return s.replace("search")
	default:
		return nil
	}
}

// SelectCategory makes name the active category; an empty name clears it.
// Selecting a category always clears the free-text search.
func (s *Session) SelectCategory(name string) *Request {
	s.category = name
	s.query = ""
	s.searchText = ""
	return s.replace("category")
}

// ToggleCategory selects name, or clears it when it is already active
func (s *Session) ToggleCategory(name string) *Request {
	if s.category == name {
		return s.SelectCategory("")
	}
	return s.SelectCategory(name)
}

// OpenFilters seeds the pending selection from the active filters
func (s *Session) OpenFilters() {
	s.pending = s.filters.Clone()
}

// PickFilter sets one value in the pending selection
func (s *Session) PickFilter(key, value string) {
	s.pending = s.pending.With(key, value)
}

// UnpickFilter removes one key from the pending selection
func (s *Session) UnpickFilter(key string) {
	s.pending = s.pending.Without(key)
}

// ApplyFilters activates the pending selection. Nothing happens when it is empty.
func (s *Session) ApplyFilters() *Request {
	if s.pending.IsEmpty() {
		return nil
	}
	s.filters = s.pending.Clone()
	return s.replace("filters applied")
}

// ResetFilters clears both the pending and the active filters. A fetch is only
// issued when filters were active.
func (s *Session) ResetFilters() *Request {
	hadFilters := !s.filters.IsEmpty()
	s.filters = domain.FilterSet{}
	s.pending = domain.FilterSet{}
	if !hadFilters {
		return nil
	}
	return s.replace("filters reset")
}

// ClearFilter removes a single active filter
func (s *Session) ClearFilter(key string) *Request {
	if !s.filters.Has(key) {
		return nil
	}
	s.filters = s.filters.Without(key)
	s.pending = s.pending.Without(key)
	return s.replace("filter cleared")
}

// ScrolledToBottom requests the next page, once per bottom dwell
func (s *Session) ScrolledToBottom() *Request {
	page, ok := s.pager.AtBottom()
	if !ok {
		return nil
	}
	return s.request(domain.ModeAppend, page)
}

// ScrolledAway re-arms the bottom trigger
func (s *Session) ScrolledAway() {
	s.pager.AwayFromBottom()
}

// Deliver applies the result of req. Failures leave the list untouched, and
// successes of an older query context are discarded. It reports whether the
// list changed.
func (s *Session) Deliver(req *Request, res imageapi.Result) bool {
	if req == nil {
		return false
	}
	if s.inFlight > 0 {
		s.inFlight--
	}

	log := s.log.WithFields(logrus.Fields{
		"seq":  req.Seq,
		"mode": req.Mode.String(),
		"page": req.Params.Page,
	})

	if req.Generation != s.generation {
		log.WithField("current", s.generation).Debug("discarding stale response")
		return false
	}
	if !res.OK() {
		s.lastErr = res.Message
		log.WithField("error", res.Message).Warn("search failed; keeping current results")
		return false
	}

	s.lastErr = ""
	s.totalHits = res.TotalHits
	s.results.Apply(res.Images, req.Mode)
	log.WithField("total", s.results.Len()).Debug("results applied")
	return true
}

// replace starts a new query context: paging back to 1, list cleared, Replace fetch
func (s *Session) replace(reason string) *Request {
	s.generation++
	s.pager.Reset()
	s.results.Reset()
	s.totalHits = 0
	req := s.request(domain.ModeReplace, 1)
	s.log.WithFields(logrus.Fields{
		"reason": reason,
		"params": req.Params.Values(),
	}).Debug("replacing results")
	return req
}

func (s *Session) request(mode domain.ResultMode, page int) *Request {
	s.seq++
	s.inFlight++
	return &Request{
		Seq:        s.seq,
		Generation: s.generation,
		Mode:       mode,
		Params:     imageapi.BuildParams(page, s.query, s.category, s.filters),
	}
}

// Images returns the accumulated results
func (s *Session) Images() []domain.Image { return s.results.Items() }

// Image returns the result at index i
func (s *Session) Image(i int) (domain.Image, bool) { return s.results.At(i) }

// Len returns the number of accumulated results
func (s *Session) Len() int { return s.results.Len() }

// SearchText returns the text as last typed
func (s *Session) SearchText() string { return s.searchText }

// Query returns the applied free-text query
func (s *Session) Query() string { return s.query }

// Category returns the active category, or ""
func (s *Session) Category() string { return s.category }

// Filters returns a copy of the active filters
func (s *Session) Filters() domain.FilterSet { return s.filters.Clone() }

// Pending returns a copy of the filters being edited
func (s *Session) Pending() domain.FilterSet { return s.pending.Clone() }

// Page returns the last requested page
func (s *Session) Page() int { return s.pager.Page() }

// TotalHits returns the hit count reported with the last applied page
func (s *Session) TotalHits() int { return s.totalHits }

// LastError returns the message of the last failed search of the current context
func (s *Session) LastError() string { return s.lastErr }

// Loading reports whether requests are outstanding
func (s *Session) Loading() bool { return s.inFlight > 0 }
