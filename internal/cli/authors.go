package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List downloaded author records",
	RunE:  runAuthors,
}

func init() {
	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	authors := newAuthorStore(GetConfig())

	ids, err := authors.List()
	if err != nil {
		return fmt.Errorf("failed to list author records: %w", err)
	}
	if len(ids) == 0 {
		fmt.Println("No author records found. Run 'scholar ingest' first.")
		return nil
	}

	for _, id := range ids {
		author, err := authors.Load(id)
		if err != nil {
			fmt.Printf("%s  (unreadable: %v)\n", id, err)
			continue
		}
		fmt.Printf("%s  %s %s (%d articles)\n", id, author.FirstName, author.LastName, len(author.Articles))
	}
	fmt.Printf("\n%d author record(s)\n", len(ids))
	return nil
}
