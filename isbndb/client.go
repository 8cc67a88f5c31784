// file: isbndb/client.go
// version: 1.2.0
// guid: 9d3b7f1e-6a2c-4e8b-9c5d-1f7a3e5b8d0c

package isbndb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultRetryDelay is used when a 429 response carries no parsable
// Retry-After header.
const defaultRetryDelay = time.Second

// Client is an ISBNdb API client. All operations are synchronous: each call
// blocks through the rate gate, the request, and at most one 429 retry
// before returning.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	plan       Plan
	gate       *rateGate

	// sleep is replaced in tests to avoid real 429 retry waits.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client for the given API key and plan. The plan picks
// both the API host and the request-per-second ceiling.
func NewClient(apiKey string, plan Plan) *Client {
	return NewClientWithBaseURL(plan.BaseURL(), apiKey, plan)
}

// NewClientWithBaseURL creates a client with a custom base URL (for testing).
func NewClientWithBaseURL(baseURL, apiKey string, plan Plan) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		plan:       plan,
		gate:       newRateGate(plan),
		sleep:      sleepContext,
	}
}

// Plan returns the subscription plan the client was built with.
func (c *Client) Plan() Plan {
	return c.plan
}

// BookOptions adjusts a single-book lookup.
type BookOptions struct {
	WithPrices bool // include merchant price offers (pro plan feature)
}

// PageOptions paginates author and publisher lookups. Zero values mean
// page 1 with the upstream default page size of 20.
type PageOptions struct {
	Page     int
	PageSize int
}

// SearchOptions adjusts a book search. PageSize is passed through to the
// API unclamped; the upstream documents a maximum of 1000.
type SearchOptions struct {
	Page     int
	PageSize int
	Language string
}

// Response envelopes used by the upstream API.
type bookEnvelope struct {
	Book Book `json:"book"`
}

type searchResponse struct {
	Total int            `json:"total"`
	Books []bookEnvelope `json:"books"`
}

type authorResponse struct {
	Author string         `json:"author"`
	Total  int            `json:"total"`
	Books  []bookEnvelope `json:"books"`
}

type publisherResponse struct {
	Name  string `json:"name"`
	Books []struct {
		ISBN string `json:"isbn"`
	} `json:"books"`
}

// GetBook fetches a single book by ISBN (10 or 13 digit). Returns
// ErrNotFound when the ISBN is unknown to the API.
func (c *Client) GetBook(ctx context.Context, isbn string, opts BookOptions) (*Book, error) {
	if strings.TrimSpace(isbn) == "" {
		return nil, fmt.Errorf("isbn must not be empty: %w", ErrInvalidInput)
	}

	var query url.Values
	if opts.WithPrices {
		query = url.Values{"with_prices": {"1"}}
	}

	var env bookEnvelope
	if err := c.get(ctx, "book", "/book/"+url.PathEscape(isbn), query, &env); err != nil {
		return nil, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return &env.Book, nil
}

// SearchBooks runs a full-text book search. Results keep the relevance
// order the API returned.
func (c *Client) SearchBooks(ctx context.Context, searchQuery string, opts SearchOptions) (*SearchResults, error) {
	if strings.TrimSpace(searchQuery) == "" {
		return nil, fmt.Errorf("search query must not be empty: %w", ErrInvalidInput)
	}
	page, pageSize, err := normalizePaging(opts.Page, opts.PageSize)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"query":    {searchQuery},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
	if opts.Language != "" {
		query.Set("language", opts.Language)
	}

	var resp searchResponse
	if err := c.get(ctx, "books", "/books/"+url.PathEscape(searchQuery), query, &resp); err != nil {
		return nil, fmt.Errorf("search books %q: %w", searchQuery, err)
	}

	results := &SearchResults{
		Total: resp.Total,
		Books: make([]Book, 0, len(resp.Books)),
	}
	for _, env := range resp.Books {
		results.Books = append(results.Books, env.Book)
	}
	return results, nil
}

// GetAuthor fetches an author with a page of their known books.
func (c *Client) GetAuthor(ctx context.Context, name string, opts PageOptions) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("author name must not be empty: %w", ErrInvalidInput)
	}
	page, pageSize, err := normalizePaging(opts.Page, opts.PageSize)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}

	var resp authorResponse
	if err := c.get(ctx, "author", "/author/"+url.PathEscape(name), query, &resp); err != nil {
		return nil, fmt.Errorf("get author %q: %w", name, err)
	}

	author := &Author{
		Name:  resp.Author,
		Total: resp.Total,
		Books: make([]Book, 0, len(resp.Books)),
	}
	for _, env := range resp.Books {
		author.Books = append(author.Books, env.Book)
	}
	return author, nil
}

// GetPublisher fetches a publisher with a page of its known book ISBNs.
func (c *Client) GetPublisher(ctx context.Context, name string, opts PageOptions) (*Publisher, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("publisher name must not be empty: %w", ErrInvalidInput)
	}
	page, pageSize, err := normalizePaging(opts.Page, opts.PageSize)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}

	var resp publisherResponse
	if err := c.get(ctx, "publisher", "/publisher/"+url.PathEscape(name), query, &resp); err != nil {
		return nil, fmt.Errorf("get publisher %q: %w", name, err)
	}

	publisher := &Publisher{
		Name:  resp.Name,
		ISBNs: make([]string, 0, len(resp.Books)),
	}
	for _, book := range resp.Books {
		publisher.ISBNs = append(publisher.ISBNs, book.ISBN)
	}
	return publisher, nil
}

// normalizePaging applies the upstream defaults (page 1, 20 per page) and
// rejects non-positive values. Page sizes above the documented maximum are
// passed through for the API to reject.
func normalizePaging(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 20
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("page must be >= 1: %w", ErrInvalidInput)
	}
	if pageSize < 1 {
		return 0, 0, fmt.Errorf("page size must be >= 1: %w", ErrInvalidInput)
	}
	return page, pageSize, nil
}

// get runs one rate-gated GET against the API and decodes the JSON body
// into out. A 429 response is retried exactly once after the server's
// Retry-After delay; a second 429 fails with ErrRateLimited.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	incRequest(endpoint)

	resp, err := c.doOnce(ctx, path, query)
	if err != nil {
		incRequestError(endpoint)
		return err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		delay := retryAfterDelay(resp.Header.Get("Retry-After"))
		drain(resp)
		log.Printf("[DEBUG] isbndb returned 429 for %s, retrying in %s", path, delay)
		if err := c.sleep(ctx, delay); err != nil {
			incRequestError(endpoint)
			return err
		}

		incRetry()
		resp, err = c.doOnce(ctx, path, query)
		if err != nil {
			incRequestError(endpoint)
			return err
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			drain(resp)
			incRequestError(endpoint)
			return ErrRateLimited
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		incRequestError(endpoint)
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(resp.Body)
		incRequestError(endpoint)
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		incRequestError(endpoint)
		return fmt.Errorf("failed to decode isbndb response: %w", err)
	}
	return nil
}

// doOnce waits on the rate gate and sends a single request. The retry path
// goes back through the gate so the plan ceiling holds across retries too.
func (c *Client) doOnce(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	if err := c.gate.wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build isbndb request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("isbndb request failed: %w", err)
	}
	return resp, nil
}

// retryAfterDelay parses a Retry-After header value as integer or float
// seconds. Absent or garbled values fall back to defaultRetryDelay.
func retryAfterDelay(header string) time.Duration {
	if header == "" {
		return defaultRetryDelay
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(header), 64)
	if err != nil || secs < 0 {
		return defaultRetryDelay
	}
	return time.Duration(secs * float64(time.Second))
}

// drain discards a response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// sleepContext sleeps for d or until the context is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
