package retriever

import (
	"fmt"
	"math"
	"sort"

	"scholar/internal/adapter/memstore"
	"scholar/internal/domain"
	"scholar/internal/port"
)

// Default parameters for weighted author ranking.
const (
	DefaultDistanceThreshold = 0.2
	DefaultPow               = 3
)

// WeightedAuthorRanker scores authors by their whole body of work rather
// than by the single closest article or the author centroid. Each article
// within the distance threshold contributes (1 - distance)^pow to its
// author's score; the unweighted sum rewards both relevance and on-topic
// productivity.
type WeightedAuthorRanker struct {
	store    *memstore.Store
	embedder port.Embedder
	lookup   port.AuthorLookup
}

func NewWeightedAuthorRanker(store *memstore.Store, embedder port.Embedder, lookup port.AuthorLookup) *WeightedAuthorRanker {
	return &WeightedAuthorRanker{
		store:    store,
		embedder: embedder,
		lookup:   lookup,
	}
}

// RankAuthors embeds the query, aggregates per-article similarity weights
// into per-author scores, and returns up to topK authors ordered by score
// descending. Ties keep the store's first-seen order. Authors with no
// article inside the threshold are dropped; an empty result is not an error.
func (r *WeightedAuthorRanker) RankAuthors(query string, topK int, threshold, pow float64) ([]domain.Author, error) {
	queryVec, err := r.embedder.EmbedQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	distances, err := r.store.Distances(queryVec)
	if err != nil {
		return nil, fmt.Errorf("distance computation failed: %w", err)
	}

	// Author centroid records are skipped to avoid counting an author's
	// aggregate alongside its own articles.
	scores := make(map[string]float64)
	var order []string
	for i, d := range distances {
		rec := r.store.Record(i)
		if rec.Kind != domain.KindArticle {
			continue
		}

		// Hard relevance cutoff: anything past the threshold is pushed to
		// distance 1, which zeroes its weight below.
		if d > threshold {
			d = 1
		}

		// Superlinearly suppress weak matches relative to strong ones.
		weight := math.Pow(1-d, pow)

		orcid := rec.Article.AuthorORCID
		if _, seen := scores[orcid]; !seen {
			order = append(order, orcid)
		}
		scores[orcid] += weight
	}

	qualified := make([]string, 0, len(order))
	for _, orcid := range order {
		if scores[orcid] > 0 {
			qualified = append(qualified, orcid)
		}
	}
	sort.SliceStable(qualified, func(a, b int) bool {
		return scores[qualified[a]] > scores[qualified[b]]
	})
	if len(qualified) > topK {
		qualified = qualified[:topK]
	}

	authors := make([]domain.Author, 0, len(qualified))
	for _, orcid := range qualified {
		author, err := r.lookup.GetAuthor(orcid)
		if err != nil {
			return nil, fmt.Errorf("failed to load author %s: %w", orcid, err)
		}
		ranked := *author
		ranked.WeightedScore = scores[orcid]
		authors = append(authors, ranked)
	}
	return authors, nil
}
