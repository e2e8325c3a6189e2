package usecase

import (
	"fmt"

	"scholar/internal/domain"
	"scholar/internal/port"
)

// SearchUseCase validates search arguments and dispatches to the ranking
// algorithms. Argument errors fail before any embedding or distance
// computation is attempted.
type SearchUseCase struct {
	searcher port.Searcher
	ranker   port.AuthorRanker
}

func NewSearchUseCase(searcher port.Searcher, ranker port.AuthorRanker) *SearchUseCase {
	return &SearchUseCase{
		searcher: searcher,
		ranker:   ranker,
	}
}

// Search runs type-filtered nearest-neighbor search. recordType must be
// "article" or "author".
func (u *SearchUseCase) Search(query, recordType string, topK int) ([]domain.SearchResult, error) {
	if topK < 1 {
		return nil, fmt.Errorf("%w: top_k must be at least 1, got %d", domain.ErrInvalidArgument, topK)
	}
	kind, err := domain.ParseRecordKind(recordType)
	if err != nil {
		return nil, err
	}
	return u.searcher.Search(query, kind, topK)
}

// RankAuthors runs weighted author ranking over aggregated article
// similarities.
func (u *SearchUseCase) RankAuthors(query string, topK int, threshold, pow float64) ([]domain.Author, error) {
	if topK < 1 {
		return nil, fmt.Errorf("%w: top_k must be at least 1, got %d", domain.ErrInvalidArgument, topK)
	}
	return u.ranker.RankAuthors(query, topK, threshold, pow)
}
