package memstore

import (
	"fmt"

	"scholar/internal/domain"
	"scholar/internal/port"
)

// Store is an append-only, in-memory vector store over author and article
// records. Records and vectors are index-aligned: the record at position i
// describes the vector at position i. The store is built once at startup and
// treated as read-only afterwards, so concurrent searches need no locking.
type Store struct {
	metric    port.Metric
	dimension int
	records   []domain.Record
	vectors   [][]float32
}

// New creates an empty store using the given distance metric.
// The embedding dimension is fixed by the first vector inserted.
func New(metric port.Metric) *Store {
	if metric == nil {
		metric = CosineMetric{}
	}
	return &Store{metric: metric}
}

// Metric returns the distance metric the store was created with.
func (s *Store) Metric() port.Metric { return s.metric }

// Dimension returns the embedding dimension, or 0 before the first insert.
func (s *Store) Dimension() int { return s.dimension }

// Len returns the total number of records (articles plus author centroids).
func (s *Store) Len() int { return len(s.records) }

// Record returns the record at position i.
func (s *Store) Record(i int) domain.Record { return s.records[i] }

// AddAuthor appends one article record per article, in the author's article
// order, followed by one author record whose vector is the centroid of the
// article vectors. Existing records are never mutated.
func (s *Store) AddAuthor(author *domain.Author) error {
	if len(author.ArticleEmbeddings) == 0 {
		return fmt.Errorf("author %s has no article embeddings", author.ORCID)
	}
	if len(author.Articles) != len(author.ArticleEmbeddings) {
		return fmt.Errorf("author %s: %d articles but %d embeddings",
			author.ORCID, len(author.Articles), len(author.ArticleEmbeddings))
	}
	for i, vec := range author.ArticleEmbeddings {
		if err := s.checkDimension(vec); err != nil {
			return fmt.Errorf("author %s article %d: %w", author.ORCID, i, err)
		}
	}

	for i := range author.Articles {
		article := author.Articles[i]
		if article.AuthorORCID == "" {
			article.AuthorORCID = author.ORCID
		}
		s.records = append(s.records, domain.Record{
			Kind:    domain.KindArticle,
			Article: &article,
		})
		s.vectors = append(s.vectors, author.ArticleEmbeddings[i])
	}

	s.records = append(s.records, domain.Record{
		Kind: domain.KindAuthor,
		Author: &domain.Author{
			ORCID:     author.ORCID,
			FirstName: author.FirstName,
			LastName:  author.LastName,
			Biography: author.Biography,
			Email:     author.Email,
		},
	})
	s.vectors = append(s.vectors, centroid(author.ArticleEmbeddings))
	return nil
}

// BuildResult reports what happened during a store build.
type BuildResult struct {
	AuthorsAdded  int
	ArticlesAdded int
	Skipped       int
	Errors        []string
}

// BuildProgress is called after each author record is processed.
type BuildProgress func(processed, total int, orcid string)

// Build populates the store from all author records available from source.
// Authors with no articles are skipped, not failed. Order across authors
// follows the source's listing order and only affects tie-breaks among
// equal-distance results.
func (s *Store) Build(source port.AuthorSource, progress BuildProgress) (*BuildResult, error) {
	ids, err := source.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list author records: %w", err)
	}

	result := &BuildResult{}
	for i, id := range ids {
		author, err := source.Load(id)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to load author %s: %v", id, err))
			continue
		}
		if len(author.Articles) == 0 || len(author.ArticleEmbeddings) == 0 {
			result.Skipped++
		} else if err := s.AddAuthor(author); err != nil {
			return nil, fmt.Errorf("failed to add author %s: %w", id, err)
		} else {
			result.AuthorsAdded++
			result.ArticlesAdded += len(author.Articles)
		}
		if progress != nil {
			progress(i+1, len(ids), id)
		}
	}
	return result, nil
}

// AuthorsIdx returns the positions of author-kind records, ascending.
// Recomputed on each call; the store is immutable after build.
func (s *Store) AuthorsIdx() []int { return s.kindIdx(domain.KindAuthor) }

// ArticlesIdx returns the positions of article-kind records, ascending.
func (s *Store) ArticlesIdx() []int { return s.kindIdx(domain.KindArticle) }

func (s *Store) kindIdx(kind domain.RecordKind) []int {
	var idx []int
	for i, rec := range s.records {
		if rec.Kind == kind {
			idx = append(idx, i)
		}
	}
	return idx
}

// CountKind returns the number of records of the given kind.
func (s *Store) CountKind(kind domain.RecordKind) int {
	n := 0
	for _, rec := range s.records {
		if rec.Kind == kind {
			n++
		}
	}
	return n
}

// Distances computes the distance from query to every stored vector, in
// store index order.
func (s *Store) Distances(query []float32) ([]float64, error) {
	if s.dimension != 0 && len(query) != s.dimension {
		return nil, fmt.Errorf("query: %w: expected %d, got %d",
			domain.ErrDimensionMismatch, s.dimension, len(query))
	}
	distances := make([]float64, len(s.vectors))
	for i, vec := range s.vectors {
		distances[i] = s.metric.Distance(query, vec)
	}
	return distances, nil
}

func (s *Store) checkDimension(vec []float32) error {
	if len(vec) == 0 {
		return fmt.Errorf("%w: empty vector", domain.ErrDimensionMismatch)
	}
	if s.dimension == 0 {
		s.dimension = len(vec)
		return nil
	}
	if len(vec) != s.dimension {
		return fmt.Errorf("%w: expected %d, got %d", domain.ErrDimensionMismatch, s.dimension, len(vec))
	}
	return nil
}

// centroid computes the element-wise arithmetic mean of vectors.
// All vectors must share the same dimension (checked by the caller).
func centroid(vectors [][]float32) []float32 {
	sum := make([]float64, len(vectors[0]))
	for _, vec := range vectors {
		for i, v := range vec {
			sum[i] += float64(v)
		}
	}
	mean := make([]float32, len(sum))
	for i, v := range sum {
		mean[i] = float32(v / float64(len(vectors)))
	}
	return mean
}
