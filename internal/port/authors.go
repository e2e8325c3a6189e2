package port

import "scholar/internal/domain"

// AuthorSource yields the author records the vector store is built from,
// one per logical author, each carrying pre-computed article embeddings.
type AuthorSource interface {
	// List returns the identifiers of all available author records.
	// Listing order is unspecified.
	List() ([]string, error)

	// Load reads the full author record for the given identifier.
	Load(orcid string) (*domain.Author, error)
}

// AuthorLookup resolves a full author record by ORCID. Implementations are
// expected to memoize: records are immutable for the process lifetime.
type AuthorLookup interface {
	GetAuthor(orcid string) (*domain.Author, error)
}
