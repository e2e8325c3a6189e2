package academic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the academic analytics API that lists institutional units,
// their faculty members, and each member's publications.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Unit is an institutional unit (department, center).
type Unit struct {
	UnitID int    `json:"unitId"`
	Name   string `json:"name"`
}

// Faculty is one author listed under a unit.
type Faculty struct {
	ID        string `json:"id"`
	ORCID     string `json:"orcid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Identifier returns the stable author identifier: ORCID when present,
// otherwise the API's own id.
func (f Faculty) Identifier() string {
	if f.ORCID != "" {
		return f.ORCID
	}
	return f.ID
}

// Article is a publication as returned by the API.
type Article struct {
	DOI         string `json:"digitalObjectIdentifier"`
	Title       string `json:"title"`
	Abstract    string `json:"abstract"`
	JournalYear int    `json:"journalYear"`
}

// Units lists all institutional units.
func (c *Client) Units() ([]Unit, error) {
	var units []Unit
	if err := c.get("/units", &units); err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// Faculties lists the faculty members of a unit.
func (c *Client) Faculties(unitID int) ([]Faculty, error) {
	var faculties []Faculty
	if err := c.get(fmt.Sprintf("/units/%d/faculties", unitID), &faculties); err != nil {
		return nil, fmt.Errorf("failed to list faculties for unit %d: %w", unitID, err)
	}
	return faculties, nil
}

// Articles lists a faculty member's publications.
func (c *Client) Articles(facultyID string) ([]Article, error) {
	var articles []Article
	if err := c.get(fmt.Sprintf("/faculties/%s/articles", facultyID), &articles); err != nil {
		return nil, fmt.Errorf("failed to list articles for faculty %s: %w", facultyID, err)
	}
	return articles, nil
}

func (c *Client) get(path string, out any) error {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return json.Unmarshal(body, out)
}
