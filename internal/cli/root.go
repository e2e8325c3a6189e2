package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"scholar/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Semantic search over academic authors and their articles",
	Long: `Scholar indexes academic author profiles and article embeddings into an
in-memory vector store and answers free-text queries with the most relevant
articles, authors, or a relevance-weighted author ranking.

Example usage:
  scholar ingest                          # Download authors and embed articles
  scholar search -q "machine learning"    # Weighted author ranking
  scholar search -q "bayesian inference" --type article -k 10
  scholar authors                         # List downloaded author records`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./scholar.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
