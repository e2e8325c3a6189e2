package authorstore

import (
	"sync"

	"scholar/internal/domain"
	"scholar/internal/port"
)

// CachedLookup is a read-through cache over an AuthorSource, keyed by ORCID.
// Records are populated lazily on first lookup and never invalidated: author
// records are immutable for the process lifetime. Safe for concurrent reads.
type CachedLookup struct {
	source  port.AuthorSource
	mu      sync.RWMutex
	authors map[string]*domain.Author
}

func NewCachedLookup(source port.AuthorSource) *CachedLookup {
	return &CachedLookup{
		source:  source,
		authors: make(map[string]*domain.Author),
	}
}

// GetAuthor returns the full author record for the given ORCID, loading it
// from the source on first access.
func (c *CachedLookup) GetAuthor(orcid string) (*domain.Author, error) {
	c.mu.RLock()
	author, ok := c.authors[orcid]
	c.mu.RUnlock()
	if ok {
		return author, nil
	}

	author, err := c.source.Load(orcid)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Another goroutine may have loaded it meanwhile; either copy is fine
	// since records are immutable.
	c.authors[orcid] = author
	c.mu.Unlock()
	return author, nil
}
