package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Store.AuthorsDir != "authors" {
		t.Errorf("expected AuthorsDir=authors, got %s", cfg.Store.AuthorsDir)
	}
	if cfg.Store.Metric != "cosine" {
		t.Errorf("expected Metric=cosine, got %s", cfg.Store.Metric)
	}
	if cfg.Search.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Search.TopK)
	}
	if cfg.Search.DistanceThreshold != 0.2 {
		t.Errorf("expected DistanceThreshold=0.2, got %f", cfg.Search.DistanceThreshold)
	}
	if cfg.Search.Pow != 3 {
		t.Errorf("expected Pow=3, got %f", cfg.Search.Pow)
	}
	if cfg.Embedding.Dimension != 1536 {
		t.Errorf("expected Dimension=1536, got %d", cfg.Embedding.Dimension)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scholar.yaml")

	yaml := `store:
  authors_dir: /data/authors
  metric: euclidean
search:
  top_k: 10
  distance_threshold: 0.5
embedding:
  provider: mock
  dimension: 64
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.AuthorsDir != "/data/authors" {
		t.Errorf("expected AuthorsDir=/data/authors, got %s", cfg.Store.AuthorsDir)
	}
	if cfg.Store.Metric != "euclidean" {
		t.Errorf("expected Metric=euclidean, got %s", cfg.Store.Metric)
	}
	if cfg.Search.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Search.TopK)
	}
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("expected Provider=mock, got %s", cfg.Embedding.Provider)
	}
	// Unset keys keep their defaults.
	if cfg.Search.Pow != 3 {
		t.Errorf("expected default Pow=3, got %f", cfg.Search.Pow)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.Search.TopK != 3 {
		t.Error("expected defaults when no config file exists")
	}

	path := filepath.Join(tmpDir, "scholar.yaml")
	if err := os.WriteFile(path, []byte("search:\n  top_k: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.Search.TopK != 7 {
		t.Errorf("expected TopK=7 from scholar.yaml, got %d", cfg.Search.TopK)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "scholar.yaml")

	cfg := DefaultConfig()
	cfg.Search.TopK = 25
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Search.TopK != 25 {
		t.Errorf("expected TopK=25 after roundtrip, got %d", loaded.Search.TopK)
	}
}
