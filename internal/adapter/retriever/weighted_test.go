package retriever

import (
	"fmt"
	"math"
	"testing"

	"scholar/internal/adapter/memstore"
	"scholar/internal/domain"
)

// mapLookup resolves authors from a map, counting lookups.
type mapLookup struct {
	authors map[string]*domain.Author
	calls   int
}

func (l *mapLookup) GetAuthor(orcid string) (*domain.Author, error) {
	l.calls++
	author, ok := l.authors[orcid]
	if !ok {
		return nil, fmt.Errorf("author %s: %w", orcid, domain.ErrNotFound)
	}
	return author, nil
}

func newLookup(authors ...*domain.Author) *mapLookup {
	l := &mapLookup{authors: make(map[string]*domain.Author)}
	for _, a := range authors {
		l.authors[a.ORCID] = a
	}
	return l
}

// X has articles [1,0] and [0,1], Y has [1,0]. Under the
// euclidean metric with threshold 0.5 and pow 1, X's second article clips to
// weight 0, so both authors score exactly 1.
func TestRankAuthorsEuclideanTie(t *testing.T) {
	x := newAuthor("x", []float32{1, 0}, []float32{0, 1})
	y := newAuthor("y", []float32{1, 0})
	st := buildStore(t, memstore.EuclideanMetric{}, x, y)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(x, y))
	ranked, err := r.RankAuthors("q", 2, 0.5, 1)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("expected both authors, got %d", len(ranked))
	}
	got := map[string]float64{}
	for _, a := range ranked {
		got[a.ORCID] = a.WeightedScore
	}
	if math.Abs(got["x"]-1) > 1e-9 || math.Abs(got["y"]-1) > 1e-9 {
		t.Errorf("expected scores x=1, y=1, got %v", got)
	}
}

func TestRankAuthorsThresholdCutoff(t *testing.T) {
	// Under cosine, "off" sits at distance 1 from the query, well past the
	// threshold, so it must contribute exactly zero.
	onTopic := newAuthor("on", []float32{1, 0})
	offTopic := newAuthor("off", []float32{0, 1})
	st := buildStore(t, memstore.CosineMetric{}, onTopic, offTopic)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(onTopic, offTopic))
	ranked, err := r.RankAuthors("q", 10, 0.2, 3)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	if len(ranked) != 1 {
		t.Fatalf("expected only the on-topic author, got %d results", len(ranked))
	}
	if ranked[0].ORCID != "on" {
		t.Errorf("expected author 'on', got %s", ranked[0].ORCID)
	}
	if math.Abs(ranked[0].WeightedScore-1) > 1e-9 {
		t.Errorf("expected score 1, got %f", ranked[0].WeightedScore)
	}
}

// An author whose qualifying articles are a strict superset of another's
// must score at least as high.
func TestRankAuthorsMonotonicity(t *testing.T) {
	smaller := newAuthor("b", []float32{1, 0})
	larger := newAuthor("a", []float32{1, 0}, []float32{1, 0.1})
	st := buildStore(t, memstore.CosineMetric{}, smaller, larger)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(smaller, larger))
	ranked, err := r.RankAuthors("q", 2, 0.2, 3)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	scores := map[string]float64{}
	for _, a := range ranked {
		scores[a.ORCID] = a.WeightedScore
	}
	if scores["a"] < scores["b"] {
		t.Errorf("superset author must not score lower: a=%f b=%f", scores["a"], scores["b"])
	}
	if ranked[0].ORCID != "a" {
		t.Errorf("expected 'a' ranked first, got %s", ranked[0].ORCID)
	}
}

// A single-article author's centroid record coincides with its article
// vector; only the article row may contribute to the score.
func TestRankAuthorsNoDoubleCounting(t *testing.T) {
	author := newAuthor("solo", []float32{1, 0})
	st := buildStore(t, memstore.CosineMetric{}, author)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(author))
	ranked, err := r.RankAuthors("q", 1, 0.2, 1)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	if len(ranked) != 1 {
		t.Fatalf("expected 1 result, got %d", len(ranked))
	}
	if math.Abs(ranked[0].WeightedScore-1) > 1e-9 {
		t.Errorf("centroid record leaked into the score: got %f, want 1", ranked[0].WeightedScore)
	}
}

func TestRankAuthorsNoQualifyingAuthors(t *testing.T) {
	author := newAuthor("far", []float32{0, 1})
	st := buildStore(t, memstore.CosineMetric{}, author)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(author))
	ranked, err := r.RankAuthors("q", 5, 0.2, 3)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("expected empty result, got %d authors", len(ranked))
	}
}

// With threshold >= 1 nothing clips, so every article contributes some
// positive weight under cosine distances in [0, 1].
func TestRankAuthorsThresholdDisablesClipping(t *testing.T) {
	near := newAuthor("near", []float32{1, 0.1})
	far := newAuthor("far", []float32{0.1, 1})
	st := buildStore(t, memstore.CosineMetric{}, near, far)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, newLookup(near, far))
	ranked, err := r.RankAuthors("q", 10, 1, 3)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("expected both authors with threshold >= 1, got %d", len(ranked))
	}
	if ranked[0].ORCID != "near" {
		t.Errorf("expected 'near' first, got %s", ranked[0].ORCID)
	}
	for _, a := range ranked {
		if a.WeightedScore <= 0 {
			t.Errorf("author %s: expected positive weight, got %f", a.ORCID, a.WeightedScore)
		}
	}
}

// The authors surfaced by ranking carry the full record from the lookup,
// not the trimmed profile stored with the centroid.
func TestRankAuthorsResolvesFullRecord(t *testing.T) {
	author := newAuthor("full", []float32{1, 0}, []float32{1, 0.2})
	author.Biography = "bio"
	st := buildStore(t, memstore.CosineMetric{}, author)
	lookup := newLookup(author)

	r := NewWeightedAuthorRanker(st, stubEmbedder{vec: []float32{1, 0}}, lookup)
	ranked, err := r.RankAuthors("q", 1, 0.9, 1)
	if err != nil {
		t.Fatalf("RankAuthors failed: %v", err)
	}

	if len(ranked) != 1 {
		t.Fatalf("expected 1 result, got %d", len(ranked))
	}
	if ranked[0].Biography != "bio" || len(ranked[0].Articles) != 2 {
		t.Errorf("expected full author record from lookup, got %+v", ranked[0])
	}
	if lookup.calls != 1 {
		t.Errorf("expected exactly 1 lookup, got %d", lookup.calls)
	}
	// Attaching the score must not mutate the shared record.
	if author.WeightedScore != 0 {
		t.Errorf("ranking mutated the cached author record: %f", author.WeightedScore)
	}
}
