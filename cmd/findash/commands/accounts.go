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
	accountsLimit int
	accountsPage  int
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts without the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api := newEnvironment()

		params := query.Filters{Limit: accountsLimit}.Build(accountsPage)
		list, err := api.ListAccounts(cmd.Context(), params)
		if err != nil {
			return err
		}
		if len(list.Items) == 0 {
			fmt.Println(i18n.T("accounts.no_accounts"))
			return nil
		}

		for _, a := range list.Items {
			fmt.Printf("%-26s %-20s %-20s %s\n", a.IBAN, a.Banca, a.Compania, format.Currency(a.Sum))
		}
		fmt.Printf("\n%s: %s\n", i18n.T("accounts.total_balance"), format.Currency(domain.TotalBalance(list.Items)))
		if p := list.Pagination; p != nil && p.Pages > 1 {
			fmt.Printf("%s %d/%d (%d %s)\n", i18n.T("pagination.page"), p.Page, p.Pages, p.Total, i18n.T("pagination.results"))
		}
		return nil
	},
}

func init() {
	accountsCmd.Flags().IntVar(&accountsLimit, "limit", 6, "Accounts per page")
	accountsCmd.Flags().IntVar(&accountsPage, "page", 1, "Page number (1-based)")
	rootCmd.AddCommand(accountsCmd)
}
