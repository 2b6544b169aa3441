package imageapi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pixels/internal/domain"
)

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		q        string
		category string
		filters  domain.FilterSet
		want     map[string]string
	}{
		{
			name: "page only",
			page: 1,
			want: map[string]string{"page": "1"},
		},
		{
			name: "query and filters",
			page: 3,
			q:    "mountain lake",
			filters: domain.FilterSet{
				"order":  "latest",
				"colors": "blue",
			},
			want: map[string]string{"page": "3", "q": "mountain lake", "order": "latest", "colors": "blue"},
		},
		{
			name:     "category without query",
			page:     2,
			category: "nature",
			filters:  domain.FilterSet{"type": "photo"},
			want:     map[string]string{"page": "2", "category": "nature", "type": "photo"},
		},
		{
			name: "page below one is clamped",
			page: 0,
			want: map[string]string{"page": "1"},
		},
		{
			name:    "filters cannot override reserved keys",
			page:    4,
			filters: domain.FilterSet{"page": "9", "q": "x", "orientation": "vertical"},
			want:    map[string]string{"page": "4", "orientation": "vertical"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildParams(tt.page, tt.q, tt.category, tt.filters)
			require.Equal(t, tt.want, p.Values())
		})
	}
}

func TestBuildParamsCopiesFilters(t *testing.T) {
	filters := domain.FilterSet{"order": "popular"}
	p := BuildParams(1, "", "", filters)
	filters["order"] = "latest"
	require.Equal(t, "popular", p.Filters["order"])
}

func TestEncodeAddsFixedOptions(t *testing.T) {
	v := Encode(Options{Key: "k", SafeSearch: true, EditorsChoice: true}, BuildParams(2, "red car", "", nil))

	require.Equal(t, "k", v.Get("key"))
	require.Equal(t, "25", v.Get("per_page"))
	require.Equal(t, "true", v.Get("safesearch"))
	require.Equal(t, "true", v.Get("editors_choice"))
	require.Equal(t, "2", v.Get("page"))
	require.Equal(t, "red car", v.Get("q"))
	require.Contains(t, v.Encode(), "q=red+car")
	require.False(t, v.Has("category"))
}

func TestEncodeFiltersCannotOverrideFixedOptions(t *testing.T) {
	filters := domain.FilterSet{
		"key":            "other",
		"per_page":       "200",
		"safesearch":     "false",
		"editors_choice": "false",
		"colors":         "red",
	}
	v := Encode(Options{Key: "k", PerPage: 25, SafeSearch: true, EditorsChoice: true}, BuildParams(1, "", "", filters))

	require.Equal(t, "k", v.Get("key"))
	require.Equal(t, "25", v.Get("per_page"))
	require.Equal(t, "true", v.Get("safesearch"))
	require.Equal(t, "true", v.Get("editors_choice"))
	require.Equal(t, "red", v.Get("colors"))
}
