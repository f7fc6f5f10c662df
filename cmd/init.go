package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	Long:  `Runs an interactive wizard that selects the generation provider, language and server settings, then writes .alkimiya.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
