package imageapi

import (
	"net/url"
	"strconv"

	"pixels/internal/domain"
)

// BuildParams assembles the params for one request. q and category are only set
// when non-empty; filter values are passed through unvalidated.
func BuildParams(page int, q, category string, filters domain.FilterSet) domain.SearchParams {
	if page < 1 {
		page = 1
	}
	p := domain.SearchParams{
		Page:    page,
		Filters: filters.Clone(),
	}
	if q != "" {
		p.Query = q
	}
	if category != "" {
		p.Category = category
	}
	return p
}

// Options are the fixed query parameters sent with every request
type Options struct {
	Key           string
	PerPage       int
	SafeSearch    bool
	EditorsChoice bool
}

// Encode renders params plus the fixed options as URL query values.
// The fixed options are set last so a filter can never override them.
func Encode(opts Options, params domain.SearchParams) url.Values {
	v := url.Values{}
	for k, val := range params.Values() {
		v.Set(k, val)
	}

	v.Set("key", opts.Key)
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	v.Set("per_page", strconv.Itoa(perPage))
	v.Set("safesearch", strconv.FormatBool(opts.SafeSearch))
	v.Set("editors_choice", strconv.FormatBool(opts.EditorsChoice))
	return v
}
