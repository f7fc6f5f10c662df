package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/semantic"
)

var (
	searchSemantic bool
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find elements by name, symbol or meaning",
	Long:  `Searches the dataset by French/Arabic name, symbol or atomic number. With --semantic, the query is matched against embedded element descriptions instead, so "gaz des ballons" finds helium.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := elements.NewCatalog()

		if !searchSemantic {
			results := catalog.Search(elements.Filter{Query: args[0]})
			if len(results) == 0 {
				fmt.Println("No elements matched.")
				return nil
			}
			fmt.Println(renderElementsTable(results))
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		embedder, err := newEmbedder(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Indexing %d elements with %s...\n", catalog.Len(), embedder.Name())
		idx, err := semantic.NewIndex(context.Background(), catalog, embedder)
		if err != nil {
			return fmt.Errorf("building index: %w", err)
		}

		matches, err := idx.Search(context.Background(), args[0], searchLimit)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No elements matched.")
			return nil
		}
		for _, m := range matches {
			el := m.Element
			fmt.Printf("%5.1f%%  %d %s — %s / %s\n", m.Similarity*100, el.Number, el.Symbol, el.NameFr, el.NameAr)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchSemantic, "semantic", false, "search by meaning using embeddings")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of semantic matches")
	rootCmd.AddCommand(searchCmd)
}
