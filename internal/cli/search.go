package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"scholar/internal/adapter/authorstore"
	"scholar/internal/adapter/retriever"
	"scholar/internal/domain"
	"scholar/internal/usecase"
)

var (
	searchQuery     string
	searchType      string
	searchTopK      int
	searchWeighted  bool
	searchThreshold float64
	searchPow       float64
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search authors or articles by semantic similarity",
	Long: `Search the author/article vector store with a free-text query.

By default authors are ranked by the weighted sum of their articles'
similarities, so an author with several on-topic papers outranks one whose
single centroid happens to sit close to the query. Use --weighted=false for
plain nearest-neighbor search over author centroids.

Examples:
  scholar search -q "deep learning for genomics"
  scholar search -q "soil microbiome" --type article -k 10 --json
  scholar search -q "causal inference" --weighted=false -k 5`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "author", "record type: author or article")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchWeighted, "weighted", true, "weight authors by number of relevant publications")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", 0, "weighted ranking distance threshold (default from config)")
	searchCmd.Flags().Float64Var(&searchPow, "pow", 0, "weighted ranking exponent (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Blank queries embed to noise; reject before building the store.
	if strings.TrimSpace(searchQuery) == "" {
		return fmt.Errorf("query must not be blank")
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	authors := newAuthorStore(cfg)
	st, err := buildStore(cfg, authors)
	if err != nil {
		return err
	}

	lookup := authorstore.NewCachedLookup(authors)
	searchUC := usecase.NewSearchUseCase(
		retriever.NewSemanticRetriever(st, embedder),
		retriever.NewWeightedAuthorRanker(st, embedder, lookup),
	)

	topK := cfg.Search.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	if searchWeighted && searchType == "author" {
		threshold := cfg.Search.DistanceThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = searchThreshold
		}
		pow := cfg.Search.Pow
		if cmd.Flags().Changed("pow") {
			pow = searchPow
		}

		ranked, err := searchUC.RankAuthors(searchQuery, topK, threshold, pow)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		return printAuthors(ranked)
	}

	results, err := searchUC.Search(searchQuery, searchType, topK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return printResults(results, lookup)
}

func printAuthors(authors []domain.Author) error {
	if searchJSON {
		output, _ := json.MarshalIndent(authors, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(authors) == 0 {
		fmt.Println("No authors found.")
		return nil
	}
	fmt.Printf("Found %d author(s):\n\n", len(authors))
	for i, a := range authors {
		fmt.Printf("%d. %s %s (score: %.3f, %d articles)\n", i+1, a.FirstName, a.LastName, a.WeightedScore, len(a.Articles))
	}
	return nil
}

func printResults(results []domain.SearchResult, lookup *authorstore.CachedLookup) error {
	if searchJSON {
		var payload []any
		for _, r := range results {
			switch r.Kind {
			case domain.KindArticle:
				payload = append(payload, r.Article)
			case domain.KindAuthor:
				payload = append(payload, r.Author)
			}
		}
		output, _ := json.MarshalIndent(payload, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("Found %d result(s):\n\n", len(results))
	for i, r := range results {
		switch r.Kind {
		case domain.KindArticle:
			fmt.Printf("%d. %s (distance: %.3f)\n", i+1, citation(r.Article, lookup), r.Distance)
		case domain.KindAuthor:
			fmt.Printf("%d. %s %s (distance: %.3f)\n", i+1, r.Author.FirstName, r.Author.LastName, r.Distance)
		}
	}
	return nil
}

// citation renders an article as "Last, First (year). Title", resolving the
// author name through the lookup cache.
func citation(article *domain.Article, lookup *authorstore.CachedLookup) string {
	if author, err := lookup.GetAuthor(article.AuthorORCID); err == nil {
		return fmt.Sprintf("%s, %s (%d). %s", author.LastName, author.FirstName, article.PublicationYear, article.Title)
	}
	return fmt.Sprintf("(%d). %s", article.PublicationYear, article.Title)
}
