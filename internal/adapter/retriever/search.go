package retriever

import (
	"fmt"
	"math"
	"sort"

	"scholar/internal/adapter/memstore"
	"scholar/internal/domain"
	"scholar/internal/port"
)

// SemanticRetriever performs type-filtered nearest-neighbor search over the
// in-memory record store.
type SemanticRetriever struct {
	store    *memstore.Store
	embedder port.Embedder
}

func NewSemanticRetriever(store *memstore.Store, embedder port.Embedder) *SemanticRetriever {
	return &SemanticRetriever{
		store:    store,
		embedder: embedder,
	}
}

// Search embeds the query, computes distances against every stored vector,
// masks out records of the other kind, and returns the topK closest records
// of the requested kind in ascending distance order. Ties break by store
// index, so results are deterministic for a fixed store.
func (r *SemanticRetriever) Search(query string, kind domain.RecordKind, topK int) ([]domain.SearchResult, error) {
	queryVec, err := r.embedder.EmbedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	distances, err := r.store.Distances(queryVec)
	if err != nil {
		return nil, fmt.Errorf("distance computation failed: %w", err)
	}

	// Mask out the other kind instead of keeping per-kind indices.
	for i := range distances {
		if r.store.Record(i).Kind != kind {
			distances[i] = math.Inf(1)
		}
	}

	idx := make([]int, len(distances))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return distances[idx[a]] < distances[idx[b]]
	})

	results := make([]domain.SearchResult, 0, topK)
	for _, i := range idx {
		if len(results) == topK || math.IsInf(distances[i], 1) {
			break
		}
		results = append(results, materialize(r.store.Record(i), distances[i]))
	}
	return results, nil
}

// materialize converts a stored record back into a typed domain object with
// the computed distance attached. Payloads are copied so search results never
// alias the store's records.
func materialize(rec domain.Record, distance float64) domain.SearchResult {
	result := domain.SearchResult{
		Kind:     rec.Kind,
		Distance: distance,
	}
	switch rec.Kind {
	case domain.KindArticle:
		article := *rec.Article
		article.Distance = distance
		result.Article = &article
	case domain.KindAuthor:
		author := *rec.Author
		author.Distance = distance
		result.Author = &author
	}
	return result
}
