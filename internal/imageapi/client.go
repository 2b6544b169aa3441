// Package imageapi talks to the paged image search endpoint.
//
// Search never returns an error: every transport, status or decoding failure is
// folded into a Result with OutcomeFailure so callers only branch on the outcome.
package imageapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pixels/internal/config"
	"pixels/internal/domain"
	"pixels/internal/logging"
)

// DefaultPerPage is the page size used when none is configured
const DefaultPerPage = 25

// maxErrorBody bounds how much of a failed response is kept for the message
const maxErrorBody = 512

// Outcome discriminates a Result
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

// Result is the normalized answer of one search
type Result struct {
	Outcome   Outcome
	Images    []domain.Image
	Total     int
	TotalHits int
	Message   string // set on failure
	Err       error  // underlying cause on failure
}

// OK reports whether the search succeeded
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Success builds a successful result
func Success(images []domain.Image, totalHits int) Result {
	return Result{Outcome: OutcomeSuccess, Images: images, Total: totalHits, TotalHits: totalHits}
}

// Failure builds a failed result from err
func Failure(err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{Outcome: OutcomeFailure, Message: msg, Err: err}
}

// Searcher is anything that can run one search request
type Searcher interface {
	Search(ctx context.Context, params domain.SearchParams) Result
}

// searchResponse is the JSON envelope returned by the endpoint
type searchResponse struct {
	Total     int            `json:"total"`
	TotalHits int            `json:"totalHits"`
	Hits      []domain.Image `json:"hits"`
}

// Client issues search requests against one endpoint
type Client struct {
	baseURL string
	opts    Options
	http    *http.Client
	log     *logrus.Entry
}

// Statically assert that *Client implements Searcher.
var _ Searcher = (*Client)(nil)

// NewClient creates a client. A nil httpClient uses the shared transport with a 30s timeout.
func NewClient(baseURL string, opts Options, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(30 * time.Second)
	}
	return &Client{
		baseURL: baseURL,
		opts:    opts,
		http:    httpClient,
		log:     logging.Component("imageapi"),
	}
}

// NewFromConfig creates a client from the API settings
func NewFromConfig(cfg config.APISettings) *Client {
	return NewClient(cfg.BaseURL, Options{
		Key:           cfg.Key,
		PerPage:       cfg.PerPage,
		SafeSearch:    cfg.SafeSearch,
		EditorsChoice: cfg.EditorsChoice,
	}, NewHTTPClient(time.Duration(cfg.TimeoutSeconds)*time.Second))
}

// URL returns the full request URL for params
func (c *Client) URL(params domain.SearchParams) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vals := range Encode(c.opts, params) {
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Search performs a single request. It never retries.
func (c *Client) Search(ctx context.Context, params domain.SearchParams) Result {
	log := c.log.WithFields(logrus.Fields{
		"page":     params.Page,
		"q":        params.Query,
		"category": params.Category,
		"filters":  params.Filters,
	})

	res, err := c.search(ctx, params)
	if err != nil {
		log.WithError(err).Error("search failed")
		return Failure(err)
	}
	log.WithField("hits", len(res.Hits)).Debug("search completed")
	out := Success(res.Hits, res.TotalHits)
	out.Total = res.Total
	return out
}

func (c *Client) search(ctx context.Context, params domain.SearchParams) (*searchResponse, error) {
	target, err := c.URL(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Never leak the key embedded in the URL
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, uerr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return &out, nil
}
