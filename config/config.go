package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the scholar tool.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Search    SearchConfig    `yaml:"search"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Ingest    IngestConfig    `yaml:"ingest"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StoreConfig holds vector store configuration.
type StoreConfig struct {
	AuthorsDir string   `yaml:"authors_dir"` // Directory of per-author JSON records
	Metric     string   `yaml:"metric"`      // "cosine" or "euclidean"
	Includes   []string `yaml:"includes"`    // Author record file patterns
	Excludes   []string `yaml:"excludes"`
}

// SearchConfig holds search defaults, overridable per invocation.
type SearchConfig struct {
	TopK              int     `yaml:"top_k"`
	DistanceThreshold float64 `yaml:"distance_threshold"` // Weighted ranking relevance cutoff
	Pow               float64 `yaml:"pow"`                // Weighted ranking exponent
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "jina", "ollama", "mock"
	Model     string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`    // Override for self-hosted endpoints
	Dimension int    `yaml:"dimension"`
	BatchSize int    `yaml:"batch_size"`
}

// IngestConfig holds ingestion configuration.
type IngestConfig struct {
	AcademicBaseURL string `yaml:"academic_base_url"`
	CrossrefBaseURL string `yaml:"crossref_base_url"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			AuthorsDir: "authors",
			Metric:     "cosine",
			Includes:   []string{"*.json"},
			Excludes:   []string{},
		},
		Search: SearchConfig{
			TopK:              3,
			DistanceThreshold: 0.2,
			Pow:               3,
		},
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 1536,
			BatchSize: 100,
		},
		Ingest: IngestConfig{
			CrossrefBaseURL: "https://api.crossref.org",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for scholar.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "scholar.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".scholar", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CrossrefCachePath returns the path to the Crossref response cache.
func CrossrefCachePath(dir string) string {
	return filepath.Join(dir, ".scholar", "crossref.db")
}

// EnsureScholarDir ensures the .scholar directory exists.
func EnsureScholarDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".scholar"), 0755)
}
