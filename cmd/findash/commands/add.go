package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"findash/internal/domain"
	"findash/internal/format"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, api := newEnvironment()

		// Offer a picker when the account list is reachable; otherwise fall
		// back to typing the IBAN by hand.
		var accountOpts []huh.Option[string]
		if list, err := api.ListAccounts(cmd.Context(), nil); err == nil {
			for _, a := range list.Items {
				label := fmt.Sprintf("%s - %s (%s)", a.Banca, a.Compania, a.IBAN)
				accountOpts = append(accountOpts, huh.NewOption(label, a.IBAN))
			}
		}

		var (
			account     string
			amountStr   string
			currency    = "RON"
			description string
			invoice     string
			profile     string
			confirmed   bool
		)

		var accountField huh.Field
		if len(accountOpts) > 0 {
			accountField = huh.NewSelect[string]().
				Title("Account").
				Options(accountOpts...).
				Value(&account)
		} else {
			accountField = huh.NewInput().
				Title("Account IBAN").
				Value(&account).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("account is required")
					}
					return nil
				})
		}

		form := huh.NewForm(
			huh.NewGroup(
				accountField,
				huh.NewInput().
					Title("Amount (negative for outgoing)").
					Value(&amountStr).
					Validate(func(s string) error {
						if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
							return fmt.Errorf("enter a number like -125.50")
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("Currency").
					Options(
						huh.NewOption("RON", "RON"),
						huh.NewOption("EUR", "EUR"),
						huh.NewOption("USD", "USD"),
					).
					Value(&currency),
				huh.NewInput().Title("Description").Value(&description),
				huh.NewInput().Title("Invoice number").Value(&invoice),
				huh.NewInput().Title("Profile name").Value(&profile),
				huh.NewConfirm().
					Title("Create this transaction?").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("cancelled")
			return nil
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		created, err := api.CreateTransaction(cmd.Context(), domain.NewTransaction{
			Amount:        amount,
			Currency:      currency,
			InvoiceNumber: invoice,
			ProfileName:   profile,
			Account:       account,
			Description:   description,
		})
		if err != nil {
			return err
		}

		fmt.Printf("created transaction %d: %s %s\n", created.ID, format.Currency(created.Amount), created.Account)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
