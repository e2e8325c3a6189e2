package crossref

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Work holds the Crossref fields the ingestion pipeline cares about.
type Work struct {
	Abstract string `json:"abstract,omitempty"`
	CitedBy  *int   `json:"cited_by,omitempty"`
}

// Client queries the Crossref works API, with an optional local cache so
// re-runs of ingestion do not rehit the network for known DOIs.
type Client struct {
	baseURL string
	cache   *Cache
	client  *http.Client
}

func NewClient(baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = "https://api.crossref.org"
	}
	return &Client{
		baseURL: baseURL,
		cache:   cache,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type worksResponse struct {
	Message struct {
		Abstract            string `json:"abstract"`
		IsReferencedByCount *int   `json:"is-referenced-by-count"`
	} `json:"message"`
}

// Work fetches abstract and citation count for a DOI.
func (c *Client) Work(doi string) (*Work, error) {
	if c.cache != nil {
		if work, ok := c.cache.Get(doi); ok {
			return work, nil
		}
	}

	reqURL := fmt.Sprintf("%s/works/%s", c.baseURL, url.PathEscape(doi))
	resp, err := c.client.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("crossref request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read crossref response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref returned status %d for %s", resp.StatusCode, doi)
	}

	var parsed worksResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse crossref response: %w", err)
	}

	work := &Work{
		Abstract: parsed.Message.Abstract,
		CitedBy:  parsed.Message.IsReferencedByCount,
	}
	if c.cache != nil {
		if err := c.cache.Put(doi, work); err != nil {
			return nil, fmt.Errorf("failed to cache crossref work: %w", err)
		}
	}
	return work, nil
}
