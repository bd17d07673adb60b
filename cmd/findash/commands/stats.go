package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"findash/internal/format"
	"findash/internal/i18n"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api := newEnvironment()

		stats, err := api.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", i18n.T("home.total_balance"), format.Currency(stats.TotalBalance))
		fmt.Printf("%s: %d\n", i18n.T("home.total_transactions"), stats.TransactionCount)
		if len(stats.RecentTransactions) > 0 {
			fmt.Printf("\n%s:\n", i18n.T("home.recent_transactions"))
			for _, tx := range stats.RecentTransactions {
				fmt.Printf("  %-18s %-28s %s\n", format.Currency(tx.Amount), tx.Account, format.Date(tx.CreatedAt))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
