package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

var (
	elementsCategory string
	elementsQuery    string
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the periodic-table dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := elements.NewCatalog()
		results := catalog.Search(elements.Filter{
			Query:    elementsQuery,
			Category: elements.Category(elementsCategory),
		})
		if len(results) == 0 {
			fmt.Println("No elements matched.")
			return nil
		}
		fmt.Println(renderElementsTable(results))
		return nil
	},
}

func renderElementsTable(els []elements.Element) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Z", "Symbole", "Nom", "الاسم", "Masse", "Famille"})
	for _, el := range els {
		label := elements.CategoryLabels[el.Category]
		tw.AppendRow(table.Row{el.Number, el.Symbol, el.NameFr, el.NameAr, el.AtomicMass, label.Fr})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

func init() {
	elementsCmd.Flags().StringVar(&elementsCategory, "category", "", "filter by element family")
	elementsCmd.Flags().StringVarP(&elementsQuery, "query", "q", "", "filter by name, symbol or atomic number")
	rootCmd.AddCommand(elementsCmd)
}
