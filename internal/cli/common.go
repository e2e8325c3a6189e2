package cli

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"scholar/config"
	"scholar/internal/adapter/authorstore"
	"scholar/internal/adapter/embedding"
	"scholar/internal/adapter/memstore"
	"scholar/internal/port"
)

// newEmbedder creates the configured embedding provider.
func newEmbedder(cfg *config.Config) (port.Embedder, error) {
	switch cfg.Embedding.Provider {
	case "openai":
		return embedding.NewOpenAIEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model)
	case "jina":
		return embedding.NewJinaEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model)
	case "ollama":
		return embedding.NewOllamaEmbedder(cfg.Embedding.Model, cfg.Embedding.BaseURL)
	case "mock":
		return embedding.NewMockEmbedder(cfg.Embedding.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
}

// newAuthorStore creates the directory-backed author record store.
func newAuthorStore(cfg *config.Config) *authorstore.DirStore {
	dir := cfg.Store.AuthorsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(GetRootDir(), dir)
	}
	return authorstore.NewDirStore(dir, cfg.Store.Includes, cfg.Store.Excludes)
}

// buildStore rebuilds the in-memory vector store from the author records on
// disk, with a progress bar.
func buildStore(cfg *config.Config, authors *authorstore.DirStore) (*memstore.Store, error) {
	metric, err := memstore.NewMetric(cfg.Store.Metric)
	if err != nil {
		return nil, err
	}
	st := memstore.New(metric)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, orcid string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Building store"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := st.Build(authors, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	if result.Skipped > 0 {
		fmt.Printf("Skipped %d author(s) with no articles\n", result.Skipped)
	}
	for _, e := range result.Errors {
		fmt.Printf("Warning: %s\n", e)
	}
	if result.AuthorsAdded == 0 {
		return nil, fmt.Errorf("no author records found in %s. Run 'scholar ingest' first", cfg.Store.AuthorsDir)
	}
	return st, nil
}
