// Package wiki fetches medal-table wikitext from the MediaWiki API.
//
// One GET per invocation, no retry, no caching: the API returns the raw
// wikitext of a single numbered section wrapped in a JSON envelope.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	apiURL = "https://en.wikipedia.org/w/api.php" +
		"?action=parse" +
		"&page=2026_Winter_Olympics_medal_table" +
		"&prop=wikitext" +
		"&section=2" +
		"&format=json"

	userAgent = "OlympicMedalTracker/1.0 (Linux; Fedora; personal project)"

	fetchTimeout = 10 * time.Second
)

// Client talks to the MediaWiki parse API.
type Client struct {
	// URL and UserAgent default to the Wikipedia medal-table endpoint;
	// tests point URL at an httptest server.
	URL       string
	UserAgent string

	http *http.Client
}

// NewClient returns a client with the fixed endpoint and timeout.
func NewClient() *Client {
	return &Client{
		URL:       apiURL,
		UserAgent: userAgent,
		http:      &http.Client{Timeout: fetchTimeout},
	}
}

// parseResponse mirrors the API envelope: {"parse":{"wikitext":{"*":"..."}}}.
// Pointer and map fields distinguish a missing key from an empty value.
type parseResponse struct {
	Parse *struct {
		Wikitext map[string]string `json:"wikitext"`
	} `json:"parse"`
}

// Fetch performs the single GET and returns the section wikitext.
// Transport, HTTP-status, decode, and missing-key failures all come back as
// wrapped errors; callers decide whether that is fatal or a degraded state.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build medal table request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch medal table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch medal table: unexpected status %s", resp.Status)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("decode medal table response: %w", err)
	}
	if pr.Parse == nil || pr.Parse.Wikitext == nil {
		return "", fmt.Errorf("medal table response missing parse.wikitext")
	}
	text, ok := pr.Parse.Wikitext["*"]
	if !ok {
		return "", fmt.Errorf("medal table response missing wikitext body")
	}
	return text, nil
}
