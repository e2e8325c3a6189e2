package port

import "scholar/internal/domain"

// Searcher defines the interface for type-filtered nearest-neighbor search.
type Searcher interface {
	// Search embeds the query and returns the topK records of the requested
	// kind, ordered by ascending distance.
	Search(query string, kind domain.RecordKind, topK int) ([]domain.SearchResult, error)
}

// AuthorRanker ranks authors by aggregated article relevance.
type AuthorRanker interface {
	// RankAuthors embeds the query and returns up to topK authors scored by
	// thresholded power-law aggregation of their articles' similarities,
	// highest score first.
	RankAuthors(query string, topK int, threshold, pow float64) ([]domain.Author, error)
}
