package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"scholar/internal/adapter/embedding"
	"scholar/internal/adapter/memstore"
	"scholar/internal/adapter/retriever"
	"scholar/internal/domain"
	"scholar/internal/port"
)

// Synthetic-store benchmark for the two ranking paths. Uses the mock
// embedder so it runs offline.
func main() {
	authors := flag.Int("authors", 1000, "Number of synthetic authors")
	articles := flag.Int("articles", 20, "Articles per author")
	dimension := flag.Int("dim", 256, "Embedding dimension")
	topK := flag.Int("k", 10, "Number of results")
	flag.Parse()

	rng := rand.New(rand.NewSource(1))
	st := memstore.New(memstore.CosineMetric{})

	buildStart := time.Now()
	for i := 0; i < *authors; i++ {
		author := syntheticAuthor(rng, i, *articles, *dimension)
		if err := st.AddAuthor(author); err != nil {
			fmt.Fprintf(os.Stderr, "Error building store: %v\n", err)
			os.Exit(1)
		}
	}
	buildElapsed := time.Since(buildStart)

	embedder := embedding.NewMockEmbedder(*dimension)

	fmt.Println("SCHOLAR SEARCH BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Records:   %d (%d authors, %d articles)\n",
		st.Len(), st.CountKind(domain.KindAuthor), st.CountKind(domain.KindArticle))
	fmt.Printf("Dimension: %d\n", st.Dimension())
	fmt.Printf("Build:     %s\n\n", buildElapsed)

	search := retriever.NewSemanticRetriever(st, embedder)
	weighted := retriever.NewWeightedAuthorRanker(st, embedder, storeLookup{st})

	query := "synthetic benchmark query"

	for _, kind := range []domain.RecordKind{domain.KindArticle, domain.KindAuthor} {
		start := time.Now()
		results, err := search.Search(query, kind, *topK)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("search type=%-8s %4d results in %s\n", kind, len(results), time.Since(start))
	}

	start := time.Now()
	ranked, err := weighted.RankAuthors(query, *topK, 0.9, retriever.DefaultPow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Weighted search error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("weighted_search       %4d results in %s\n", len(ranked), time.Since(start))
}

func syntheticAuthor(rng *rand.Rand, i, articles, dimension int) *domain.Author {
	author := &domain.Author{
		ORCID:     fmt.Sprintf("0000-0000-0000-%04d", i),
		FirstName: "Author",
		LastName:  fmt.Sprintf("%d", i),
	}
	for j := 0; j < articles; j++ {
		author.Articles = append(author.Articles, domain.Article{
			DOI:   fmt.Sprintf("10.0000/%d.%d", i, j),
			Title: fmt.Sprintf("Synthetic article %d-%d", i, j),
		})
		vec := make([]float32, dimension)
		for d := range vec {
			vec[d] = rng.Float32()
		}
		author.ArticleEmbeddings = append(author.ArticleEmbeddings, vec)
	}
	return author
}

// storeLookup resolves authors straight from the store's centroid records;
// the benchmark has no author records on disk.
type storeLookup struct {
	st *memstore.Store
}

var _ port.AuthorLookup = storeLookup{}

func (l storeLookup) GetAuthor(orcid string) (*domain.Author, error) {
	for _, i := range l.st.AuthorsIdx() {
		if rec := l.st.Record(i); rec.Author.ORCID == orcid {
			return rec.Author, nil
		}
	}
	return nil, fmt.Errorf("author %s: %w", orcid, domain.ErrNotFound)
}
