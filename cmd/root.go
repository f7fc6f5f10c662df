package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "alkimiya",
	Short: "Interactive bilingual periodic-table explorer",
	Long: `Alkimiya is a periodic-table companion for French/Arabic learners.
It generates localized element descriptions and narration with an AI
provider, plays them aloud, and lets you mix elements in a virtual lab
to discover compounds.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".alkimiya.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
