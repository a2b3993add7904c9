package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// OMDb free tier is 1000 requests/day; a small client-side limit keeps
	// bursts of create-movie requests from burning through it.
	rateLimit = 5
	rateBurst = 10

	notApplicable = "N/A"
)

// ErrNotFound is returned when OMDb has no entry for the requested title
// (Response == "False").
var ErrNotFound = errors.New("movie not found in OMDb")

var leadingYear = regexp.MustCompile(`^\d{4}`)

// Client handles OMDb API requests with rate limiting and a bounded timeout.
// A lookup is a single attempt: callers treat timeouts and network failures
// the same as a miss, so there is no retry loop.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a new OMDb API client
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FetchByTitle looks up a movie by exact title and returns the normalized
// enrichment record, or ErrNotFound when OMDb has no match.
func (c *Client) FetchByTitle(ctx context.Context, title string) (*MovieDetails, error) {
	if c.apiKey == "" {
		return nil, errors.New("OMDb API key is not configured")
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", c.apiKey)
	fullURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ReviewHub/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OMDb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OMDb returned HTTP %d", resp.StatusCode)
	}

	var raw lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse OMDb response: %w", err)
	}

	if raw.Response != "True" {
		return nil, ErrNotFound
	}

	return &MovieDetails{
		Title:       raw.Title,
		ImdbID:      raw.ImdbID,
		Plot:        normalize(raw.Plot),
		Poster:      normalize(raw.Poster),
		ReleaseYear: ParseYear(raw.Year),
		Genre:       normalize(raw.Genre),
		Director:    normalize(raw.Director),
	}, nil
}

// ParseYear extracts a release year from OMDb's Year field. The field may be
// a plain year ("2014"), a range ("2001–2003", in which case the start year
// wins), or junk; nil means no year.
func ParseYear(raw string) *int {
	if year, err := strconv.Atoi(raw); err == nil {
		return &year
	}
	match := leadingYear.FindString(raw)
	if match == "" {
		return nil
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &year
}

// normalize maps OMDb's "N/A" sentinel and empty strings to nil.
func normalize(value string) *string {
	if value == "" || value == notApplicable {
		return nil
	}
	return &value
}
