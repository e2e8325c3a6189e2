package authorstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"scholar/internal/domain"
)

// DirStore reads and writes per-author JSON records in a flat directory,
// one file per author named <orcid>.json. It is the source the vector
// store is rebuilt from on each process start.
type DirStore struct {
	dir      string
	includes []string
	excludes []string
}

func NewDirStore(dir string, includes, excludes []string) *DirStore {
	if len(includes) == 0 {
		includes = []string{"*.json"}
	}
	return &DirStore{
		dir:      dir,
		includes: includes,
		excludes: excludes,
	}
}

// List returns the ORCIDs of all stored author records, in directory
// listing order.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read authors directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if s.shouldInclude(name) && !s.shouldExclude(name) {
			ids = append(ids, strings.TrimSuffix(name, filepath.Ext(name)))
		}
	}
	return ids, nil
}

// Load reads the author record for the given ORCID.
func (s *DirStore) Load(orcid string) (*domain.Author, error) {
	data, err := os.ReadFile(s.path(orcid))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("author %s: %w", orcid, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read author record: %w", err)
	}

	var author domain.Author
	if err := json.Unmarshal(data, &author); err != nil {
		return nil, fmt.Errorf("failed to parse author record %s: %w", orcid, err)
	}
	if author.ORCID == "" {
		author.ORCID = orcid
	}
	return &author, nil
}

// Save writes the author record, creating the directory if needed.
func (s *DirStore) Save(author *domain.Author) error {
	if author.ORCID == "" {
		return fmt.Errorf("author record has no orcid")
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create authors directory: %w", err)
	}

	data, err := json.MarshalIndent(author, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal author record: %w", err)
	}
	if err := os.WriteFile(s.path(author.ORCID), data, 0644); err != nil {
		return fmt.Errorf("failed to write author record: %w", err)
	}
	return nil
}

// Exists reports whether a record for the given ORCID is already on disk.
func (s *DirStore) Exists(orcid string) bool {
	_, err := os.Stat(s.path(orcid))
	return err == nil
}

func (s *DirStore) path(orcid string) string {
	return filepath.Join(s.dir, orcid+".json")
}

func (s *DirStore) shouldInclude(name string) bool {
	for _, pattern := range s.includes {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (s *DirStore) shouldExclude(name string) bool {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}
	return false
}
