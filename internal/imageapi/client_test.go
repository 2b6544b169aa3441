package imageapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pixels/internal/domain"
)

const hitsJSON = `{
  "total": 4692,
  "totalHits": 500,
  "hits": [
    {"id": 195893, "pageURL": "https://example.test/photos/195893/", "type": "photo",
     "tags": "blossom, bloom, flower",
     "previewURL": "https://cdn.example.test/photo/2013/10/15/09/12/flower-195893_150.jpg",
     "webformatURL": "https://cdn.example.test/get/35bbf209e13e_640.jpg",
     "imageWidth": 4000, "imageHeight": 2250, "likes": 12, "user": "Josch13"},
    {"id": 2, "previewURL": "https://cdn.example.test/b_150.jpg", "imageWidth": 100, "imageHeight": 200}
  ]
}`

func TestSearchSuccess(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hitsJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", Options{Key: "k", PerPage: 25, SafeSearch: true, EditorsChoice: true}, srv.Client())
	res := c.Search(context.Background(), BuildParams(1, "flower", "", domain.FilterSet{"colors": "red"}))

	require.True(t, res.OK())
	require.Len(t, res.Images, 2)
	require.Equal(t, 195893, res.Images[0].ID)
	require.Equal(t, 4000, res.Images[0].ImageWidth)
	require.Equal(t, 500, res.TotalHits)
	require.Equal(t, 4692, res.Total)

	require.Equal(t, "k", got.Get("key"))
	require.Equal(t, "1", got.Get("page"))
	require.Equal(t, "flower", got.Get("q"))
	require.Equal(t, "red", got.Get("colors"))
	require.Equal(t, "25", got.Get("per_page"))
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, res Result)
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("[ERROR 400] Invalid or missing API key"))
			},
			check: func(t *testing.T, res Result) {
				var apiErr *APIError
				require.True(t, errors.As(res.Err, &apiErr))
				require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				require.Contains(t, res.Message, "Invalid or missing API key")
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			check: func(t *testing.T, res Result) {
				var decErr *DecodeError
				require.True(t, errors.As(res.Err, &decErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := NewClient(srv.URL, Options{}, srv.Client()).Search(context.Background(), BuildParams(1, "", "", nil))
			require.False(t, res.OK())
			require.Empty(t, res.Images)
			require.NotEmpty(t, res.Message)
			tt.check(t, res)
		})
	}
}

func TestSearchNetworkErrorDoesNotLeakKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	res := NewClient(base, Options{Key: "super-secret"}, nil).Search(context.Background(), BuildParams(1, "", "", nil))
	require.False(t, res.OK())
	require.NotContains(t, res.Message, "super-secret")
}

func TestSearchSingleAttempt(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	res := NewClient(srv.URL, Options{}, srv.Client()).Search(context.Background(), BuildParams(1, "", "", nil))
	require.False(t, res.OK())
	require.Equal(t, 1, calls)
}

func TestSearchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res := NewClient(srv.URL, Options{}, srv.Client()).Search(ctx, BuildParams(1, "", "", nil))
	require.False(t, res.OK())
	require.True(t, errors.Is(res.Err, context.DeadlineExceeded))
}

func TestURLKeepsBaseQuery(t *testing.T) {
	c := NewClient("https://example.test/api/?lang=de", Options{Key: "k"}, nil)
	raw, err := c.URL(BuildParams(2, "", "music", nil))
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "de", u.Query().Get("lang"))
	require.Equal(t, "music", u.Query().Get("category"))
	require.Equal(t, "2", u.Query().Get("page"))
}
