package cmd

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/explorer"
)

var detailsCmd = &cobra.Command{
	Use:   "details <element>",
	Short: "Generate localized details for an element",
	Long:  `Fetches the AI-generated description, applications and fun fact for an element, given its atomic number or symbol. Name pronunciation audio is fetched alongside and cached for the session.`,
	Args:  cobra.ExactArgs(1),
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
		el, err := resolveElement(catalog, args[0])
		if err != nil {
			return err
		}

		// No audio device needed for a text fetch.
		player := audio.NewController(func([]byte) (audio.Sink, error) {
			return nil, fmt.Errorf("no audio in details mode; use `alkimiya say`")
		})
		session := explorer.NewSession(catalog, gen, player)
		if _, err := session.Open(el.Number); err != nil {
			return err
		}

		bar := progressbar.NewOptions(1,
			progressbar.OptionSetDescription(fmt.Sprintf("Generating %s", el.NameFr)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
		details, err := session.GenerateDetails(context.Background())
		_ = bar.Finish()
		if err != nil {
			return err
		}

		fmt.Printf("\n%s (%s) — %s\n\n", el.NameFr, el.Symbol, el.NameAr)
		if displayLang(cfg) == elements.LangAr {
			fmt.Println(details.DescriptionAr)
			fmt.Println()
			for _, app := range details.ApplicationsAr {
				fmt.Printf("  • %s\n", app)
			}
			fmt.Printf("\n%s\n", details.FunFactAr)
		} else {
			fmt.Println(details.DescriptionFr)
			fmt.Println()
			for _, app := range details.ApplicationsFr {
				fmt.Printf("  • %s\n", app)
			}
			fmt.Printf("\n%s\n", details.FunFactFr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
