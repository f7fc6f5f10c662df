package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var usageLimit int

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the generation usage ledger",
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

		records, err := store.List(usageLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No usage recorded yet.")
			return nil
		}

		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"When", "Op", "Model", "In", "Out", "Chars", "Cost", "ms", ""})
		for _, r := range records {
			status := ""
			if r.Failed {
				status = "failed"
			}
			tw.AppendRow(table.Row{
				r.CreatedAt.Local().Format("01-02 15:04:05"),
				string(r.Op), r.Model,
				r.InputTokens, r.OutputTokens, r.Characters,
				fmt.Sprintf("$%.4f", r.CostUSD), r.Duration, status,
			})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
			{Number: 6, Align: text.AlignRight},
			{Number: 7, Align: text.AlignRight},
			{Number: 8, Align: text.AlignRight},
		})
		fmt.Println(tw.Render())

		sum, err := store.Summarize()
		if err != nil {
			return err
		}
		fmt.Printf("Total: %d calls (%d failed), %d in / %d out tokens, %d chars, $%.4f\n",
			sum.Calls, sum.Failed, sum.InputTokens, sum.OutputTokens, sum.Characters, sum.CostUSD)
		return nil
	},
}

func init() {
	usageCmd.Flags().IntVar(&usageLimit, "limit", 20, "number of records to show")
	rootCmd.AddCommand(usageCmd)
}
