package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"scholar/config"
	"scholar/internal/adapter/academic"
	"scholar/internal/adapter/crossref"
	"scholar/internal/usecase"
)

var ingestOverwrite bool

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Download author records and embed their articles",
	Long: `Download author profiles and publications from the academic analytics API,
enrich citation counts from Crossref, embed article texts, and write one JSON
record per author into the authors directory.

Authors already on disk are skipped unless --overwrite is given. Crossref
responses are cached in .scholar/crossref.db so re-runs stay cheap.

Examples:
  scholar ingest
  scholar ingest --overwrite`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().BoolVar(&ingestOverwrite, "overwrite", false, "re-download authors already on disk")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	if cfg.Ingest.AcademicBaseURL == "" {
		return fmt.Errorf("ingest.academic_base_url is not configured")
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	if err := config.EnsureScholarDir(rootDir); err != nil {
		return fmt.Errorf("failed to create .scholar directory: %w", err)
	}
	cache, err := crossref.NewCache(config.CrossrefCachePath(rootDir))
	if err != nil {
		return fmt.Errorf("failed to open crossref cache: %w", err)
	}
	defer cache.Close()

	ingestUC := usecase.NewIngestUseCase(
		academic.NewClient(cfg.Ingest.AcademicBaseURL),
		crossref.NewClient(cfg.Ingest.CrossrefBaseURL, cache),
		embedder,
		newAuthorStore(cfg),
	)

	fmt.Printf("Ingesting authors (model: %s)...\n", embedder.ModelName())

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, orcid string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Ingesting"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := ingestUC.Ingest(ingestOverwrite, progress)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("\nIngestion complete:\n")
	fmt.Printf("  Authors saved:     %d\n", result.AuthorsSaved)
	fmt.Printf("  Authors existing:  %d (already downloaded)\n", result.AuthorsExisting)
	fmt.Printf("  Authors skipped:   %d (no articles)\n", result.AuthorsSkipped)
	fmt.Printf("  Articles embedded: %d\n", result.ArticlesEmbedded)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}
