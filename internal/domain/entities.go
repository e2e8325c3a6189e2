package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch reports a vector whose length disagrees with the
	// store's established embedding dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidArgument reports a caller-supplied argument the search layer
	// rejects before any distance computation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a missing author record.
	ErrNotFound = errors.New("not found")
)

// Article is a single publication owned by an author.
type Article struct {
	DOI             string `json:"doi"`
	Title           string `json:"title"`
	Abstract        string `json:"abstract,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	AuthorORCID     string `json:"author_orcid,omitempty"`
	CitedBy         *int   `json:"cited_by,omitempty"`

	// Distance is attached by nearest-neighbor search.
	Distance float64 `json:"distance,omitempty"`
}

// Text returns the string that gets embedded for this article.
func (a *Article) Text() string {
	if a.Abstract == "" {
		return a.Title
	}
	return a.Title + "\n\n" + a.Abstract
}

// Author is an academic author profile plus their articles and the
// pre-computed embeddings of those articles, index-aligned.
type Author struct {
	ORCID     string `json:"orcid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Biography string `json:"biography,omitempty"`
	Email     string `json:"email,omitempty"`

	Articles          []Article   `json:"articles,omitempty"`
	ArticleEmbeddings [][]float32 `json:"articles_embeddings,omitempty"`

	// Distance is attached by nearest-neighbor search,
	// WeightedScore by weighted author ranking.
	Distance      float64 `json:"distance,omitempty"`
	WeightedScore float64 `json:"weighted_score,omitempty"`
}

// Texts returns the embedding input for each article, in article order.
func (a *Author) Texts() []string {
	texts := make([]string, len(a.Articles))
	for i := range a.Articles {
		texts[i] = a.Articles[i].Text()
	}
	return texts
}

// RecordKind discriminates the two record types held by the store.
type RecordKind int

const (
	KindArticle RecordKind = iota
	KindAuthor
)

func (k RecordKind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindAuthor:
		return "author"
	default:
		return fmt.Sprintf("RecordKind(%d)", int(k))
	}
}

// ParseRecordKind maps the user-facing type name to a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch strings.ToLower(s) {
	case "article":
		return KindArticle, nil
	case "author":
		return KindAuthor, nil
	default:
		return 0, fmt.Errorf("%w: unknown record type %q (want \"article\" or \"author\")", ErrInvalidArgument, s)
	}
}

// Record is the tagged variant stored alongside each vector. Exactly one of
// Article or Author is set, matching Kind.
type Record struct {
	Kind    RecordKind
	Article *Article
	Author  *Author
}

// SearchResult is one materialized nearest-neighbor hit. The payload matches
// Kind; Distance mirrors the payload's attached distance for callers that do
// not care which variant they got.
type SearchResult struct {
	Kind     RecordKind
	Article  *Article
	Author   *Author
	Distance float64
}
