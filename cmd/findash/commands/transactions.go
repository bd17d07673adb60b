package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"findash/internal/domain"
	"findash/internal/format"
	"findash/internal/i18n"
	"findash/internal/query"
)

var (
	txAccount   string
	txStartDate string
	txEndDate   string
	txLimit     int
	txPage      int
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions without the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api := newEnvironment()

		filters := query.Filters{
			Account:   txAccount,
			StartDate: txStartDate,
			EndDate:   txEndDate,
			Limit:     txLimit,
		}
		page, err := api.FetchTransactionPage(cmd.Context(), filters.Build(txPage))
		if err != nil {
			return err
		}
		if len(page.Transactions.Items) == 0 {
			fmt.Println(i18n.T("transactions.no_transactions"))
			return nil
		}

		byIBAN := domain.AccountsByIBAN(page.Accounts)
		for _, tx := range page.Transactions.Items {
			account := tx.Account
			if acc, ok := byIBAN[tx.Account]; ok {
				account = fmt.Sprintf("%s (%s)", acc.Banca, acc.Compania)
			}
			fmt.Printf("%-18s %-40s %-18s %s\n",
				format.Currency(tx.Amount), account, format.DateTime(tx.CreatedAt), tx.Description)
		}
		if p := page.Transactions.Pagination; p != nil && p.Pages > 1 {
			fmt.Printf("\n%s %d/%d (%d %s)\n", i18n.T("pagination.page"), p.Page, p.Pages, p.Total, i18n.T("pagination.results"))
		}
		return nil
	},
}

func init() {
	transactionsCmd.Flags().StringVar(&txAccount, "account", "", "Filter by account IBAN")
	transactionsCmd.Flags().StringVar(&txStartDate, "start-date", "", "Inclusive start date (YYYY-MM-DD)")
	transactionsCmd.Flags().StringVar(&txEndDate, "end-date", "", "Inclusive end date (YYYY-MM-DD)")
	transactionsCmd.Flags().IntVar(&txLimit, "limit", 10, "Transactions per page")
	transactionsCmd.Flags().IntVar(&txPage, "page", 1, "Page number (1-based)")
	rootCmd.AddCommand(transactionsCmd)
}
