package commands

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"findash/internal/client"
	"findash/internal/config"
	"findash/internal/i18n"
	"findash/internal/prefs"
	"findash/internal/tui"
)

var (
	// Global flags
	apiURL   string
	langFlag string
)

// rootCmd runs the interactive dashboard; subcommands cover the one-shot
// listings, transaction entry and the local stub API.
var rootCmd = &cobra.Command{
	Use:   "findash",
	Short: "Bilingual terminal dashboard for bank accounts and transactions",
	Long: `findash is a terminal dashboard over a remote accounts/transactions API.

The default command opens the interactive dashboard with three pages:
a summary, the account list and the filterable transaction history.
Labels are available in Romanian and English (press l to switch).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, api := newEnvironment()
		program := tea.NewProgram(tui.NewApp(api, store), tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (overrides FINDASH_API_URL)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Interface language: ro or en")
}

// newEnvironment resolves configuration, saved preferences and the API
// client shared by all commands. For the language: flag beats saved
// preference beats environment beats default.
func newEnvironment() (*prefs.Store, *client.Client) {
	cfg := config.Load()

	store, err := prefs.NewStore()
	if err != nil {
		log.Warn("preferences unavailable", "err", err)
		store = nil
	}

	lang := cfg.Language
	if store != nil && store.Prefs.Language != "" {
		lang = store.Prefs.Language
	}
	if langFlag != "" {
		lang = langFlag
	}
	if !i18n.Set(i18n.Locale(lang)) {
		log.Warn("unsupported language, keeping default", "lang", lang)
	}

	base := cfg.APIBaseURL
	if apiURL != "" {
		base = apiURL
	}
	return store, client.New(base, cfg.HTTPTimeout)
}
