package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/explorer"
	"github.com/ykhadiri/alkimiya/internal/genai"
	"github.com/ykhadiri/alkimiya/internal/report"
)

var mixReportDir string

var mixCmd = &cobra.Command{
	Use:   "mix <element> <element> [element...]",
	Short: "Combine elements into a compound",
	Long:  `Asks the configured provider what 2 to 5 elements form together. A "no reaction" verdict is a normal outcome, not an error.`,
	Args:  cobra.RangeArgs(2, explorer.MaxLabElements),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openLedger(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		gen, err := newGenerator(cfg, store)
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		catalog := elements.NewCatalog()
		var els []elements.Element
		var symbols []string
		for _, arg := range args {
			el, err := resolveElement(catalog, arg)
			if err != nil {
				return err
			}
			els = append(els, el)
			symbols = append(symbols, el.Symbol)
		}

		fmt.Printf("Mixing %s...\n\n", strings.Join(symbols, " + "))
		compound, err := gen.Combine(context.Background(), els)
		if err != nil {
			return err
		}

		printCompound(compound)

		if mixReportDir != "" {
			path, err := report.Save(mixReportDir, report.Data{
				Lab:         els,
				Mix:         compound,
				GeneratedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("saving report: %w", err)
			}
			fmt.Printf("\nReport saved to %s\n", path)
		}
		return nil
	},
}

func printCompound(c *genai.Compound) {
	if !c.Success {
		fmt.Println("Pas de réaction / لا تفاعل")
		if c.ErrorFr != "" {
			fmt.Printf("\n%s\n%s\n", c.ErrorFr, c.ErrorAr)
		}
		return
	}
	fmt.Printf("%s / %s\n", c.NameFr, c.NameAr)
	fmt.Printf("Formule : %s\n", c.Formula)
	fmt.Printf("État : %s\n", c.State)
	if c.Color != "" {
		fmt.Printf("Couleur : %s\n", c.Color)
	}
	fmt.Printf("\n%s\n\n%s\n", c.DescriptionFr, c.DescriptionAr)
}

func init() {
	mixCmd.Flags().StringVar(&mixReportDir, "report", "", "save an HTML lab report to this directory")
	rootCmd.AddCommand(mixCmd)
}
