package domain

import (
	"net/url"
	"path"
	"sort"
	"strconv"
)

// Image represents one hit returned by the image search endpoint
type Image struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Type          string `json:"type"`
	Tags          string `json:"tags"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	Likes         int    `json:"likes"`
	User          string `json:"user"`
}

// AspectRatio returns width/height, or 1 when the size is unknown
func (i Image) AspectRatio() float64 {
	if i.ImageWidth <= 0 || i.ImageHeight <= 0 {
		return 1
	}
	return float64(i.ImageWidth) / float64(i.ImageHeight)
}

// IsPortrait reports whether the image is taller than it is wide
func (i Image) IsPortrait() bool {
	return i.AspectRatio() < 1
}

// FileName returns the basename used when the image is saved locally.
// The preview URL carries the stable file name; the webformat URL is the fallback.
func (i Image) FileName() string {
	for _, raw := range []string{i.PreviewURL, i.WebformatURL} {
		if name := BaseName(raw); name != "" {
			return name
		}
	}
	return strconv.Itoa(i.ID) + ".jpg"
}

// BaseName returns the last path element of a URL, ignoring query strings
func BaseName(raw string) string {
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// ResultMode tells the accumulator what to do with a fetched page
type ResultMode int

const (
	ModeReplace ResultMode = iota
	ModeAppend
)

func (m ResultMode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// FilterSet maps a filter name (order, orientation, type, colors) to its value.
// Methods never mutate the receiver.
type FilterSet map[string]string

// Clone returns an independent copy
func (f FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// With returns a copy with key set to value
func (f FilterSet) With(key, value string) FilterSet {
	out := f.Clone()
	out[key] = value
	return out
}

// Without returns a copy with key removed
func (f FilterSet) Without(key string) FilterSet {
	out := f.Clone()
	delete(out, key)
	return out
}

// Has reports whether key is set
func (f FilterSet) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// IsEmpty reports whether no filter is set
func (f FilterSet) IsEmpty() bool {
	return len(f) == 0
}

// Keys returns the filter names in a stable order
func (f FilterSet) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reserved query keys that a FilterSet entry can never override
const (
	ParamPage     = "page"
	ParamQuery    = "q"
	ParamCategory = "category"
)

// SearchParams describes one request to the search endpoint
type SearchParams struct {
	Page     int
	Query    string
	Category string
	Filters  FilterSet
}

// Values flattens the params into query keys: page, every filter, and q/category when set
func (p SearchParams) Values() map[string]string {
	out := make(map[string]string, len(p.Filters)+3)
	for k, v := range p.Filters {
		switch k {
		case ParamPage, ParamQuery, ParamCategory:
			continue
		}
		out[k] = v
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	out[ParamPage] = strconv.Itoa(page)
	if p.Query != "" {
		out[ParamQuery] = p.Query
	}
	if p.Category != "" {
		out[ParamCategory] = p.Category
	}
	return out
}

// FilterSection is one group of choices in the filters modal
type FilterSection struct {
	Name    string
	Options []string
}

// Filter names
const (
	FilterOrder       = "order"
	FilterOrientation = "orientation"
	FilterType        = "type"
	FilterColors      = "colors"
)

// FilterSections lists the filters offered by the modal, in display order
var FilterSections = []FilterSection{
	{Name: FilterOrder, Options: []string{"popular", "latest"}},
	{Name: FilterOrientation, Options: []string{"horizontal", "vertical"}},
	{Name: FilterType, Options: []string{"photo", "illustration", "vector"}},
	{Name: FilterColors, Options: []string{
		"red", "orange", "yellow", "green", "turquoise", "blue",
		"lilac", "pink", "white", "gray", "black", "brown",
	}},
}

// Categories lists the topical categories accepted by the endpoint
var Categories = []string{
	"backgrounds", "fashion", "nature", "science", "education", "feelings",
	"health", "people", "religion", "places", "animals", "industry",
	"computer", "food", "sports", "transportation", "travel", "buildings",
	"business", "music",
}
