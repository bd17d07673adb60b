// Package tui is the interactive terminal dashboard: three pages (summary,
// accounts, transactions) over the remote API, with pagination, filters and
// a language toggle.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findash/internal/i18n"
	"findash/internal/prefs"
)

type page int

const (
	pageHome page = iota
	pageAccounts
	pageTransactions
)

// App is the root bubbletea model. Each page owns its own filter, paging and
// data state; the only cross-page state is the process-wide locale.
type App struct {
	store *prefs.Store

	page         page
	home         homeModel
	accounts     accountsModel
	transactions transactionsModel

	width  int
	height int
}

// NewApp wires the dashboard against the given API. store may be nil; it is
// only used to remember the language choice.
func NewApp(api API, store *prefs.Store) *App {
	limit := defaultTransactionsLimit
	if store != nil && store.Prefs.TransactionsLimit > 0 {
		limit = store.Prefs.TransactionsLimit
	}
	return &App{
		store:        store,
		home:         newHomeModel(api),
		accounts:     newAccountsModel(api),
		transactions: newTransactionsModel(api, limit),
	}
}

func (a *App) Init() tea.Cmd {
	return a.home.load()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.home.width = msg.Width
		a.accounts.width = msg.Width
		a.transactions.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		// While the filter form captures input only esc-like navigation is
		// global; everything else belongs to the form.
		if a.page == pageTransactions && a.transactions.editingFilters() {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a, a.transactions.update(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			return a, a.switchTo(pageHome)
		case "2":
			return a, a.switchTo(pageAccounts)
		case "3":
			return a, a.switchTo(pageTransactions)
		case "tab":
			return a, a.switchTo((a.page + 1) % 3)
		case "l":
			locale := i18n.Toggle()
			if a.store != nil {
				_ = a.store.SetLanguage(string(locale))
			}
			return a, nil
		}
		return a, a.routeToCurrent(msg)

	case statsLoadedMsg, statsFailedMsg:
		return a, a.home.update(msg)
	case accountsLoadedMsg, accountsFailedMsg:
		return a, a.accounts.update(msg)
	case transactionsLoadedMsg, transactionsFailedMsg:
		return a, a.transactions.update(msg)

	case spinner.TickMsg:
		// Spinner ticks carry the owning spinner's id; every page checks its
		// own, so fan the tick out.
		return a, tea.Batch(
			a.home.update(msg),
			a.accounts.update(msg),
			a.transactions.update(msg),
		)
	}
	return a, nil
}

// switchTo changes the visible page. Stats are refetched on every visit;
// list pages fetch on first visit and then keep their own state.
func (a *App) switchTo(p page) tea.Cmd {
	a.page = p
	switch p {
	case pageHome:
		return a.home.load()
	case pageAccounts:
		return a.accounts.activate()
	case pageTransactions:
		return a.transactions.activate()
	}
	return nil
}

func (a *App) routeToCurrent(msg tea.Msg) tea.Cmd {
	switch a.page {
	case pageHome:
		return a.home.update(msg)
	case pageAccounts:
		return a.accounts.update(msg)
	case pageTransactions:
		return a.transactions.update(msg)
	}
	return nil
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.navView())
	b.WriteString("\n\n")

	switch a.page {
	case pageHome:
		b.WriteString(a.home.view())
	case pageAccounts:
		b.WriteString(a.accounts.view())
	case pageTransactions:
		b.WriteString(a.transactions.view())
	}

	b.WriteString("\n\n")
	b.WriteString(a.helpView())
	return b.String()
}

func (a *App) navView() string {
	tabs := []struct {
		p     page
		label string
	}{
		{pageHome, "1 " + i18n.T("navigation.home")},
		{pageAccounts, "2 " + i18n.T("navigation.accounts")},
		{pageTransactions, "3 " + i18n.T("navigation.transactions")},
	}
	parts := make([]string, 0, len(tabs)+2)
	parts = append(parts, titleStyle.Render(i18n.T("navigation.app_title")), " ")
	for _, tab := range tabs {
		if tab.p == a.page {
			parts = append(parts, activeTabStyle.Render(tab.label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab.label))
		}
	}
	lang := "🇷🇴 RO"
	if i18n.Current() == i18n.EN {
		lang = "🇬🇧 EN"
	}
	parts = append(parts, "  ", mutedStyle.Render(lang))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (a *App) helpView() string {
	keys := "1/2/3 • ←/→ " + i18n.T("pagination.page") +
		" • r: " + i18n.T("common.retry") +
		" • l: " + i18n.T("common.language") +
		" • q"
	if a.page == pageTransactions {
		keys = "f: " + i18n.T("transactions.filters") +
			" • x: " + i18n.T("transactions.reset_filters") +
			" • " + keys
	}
	return helpStyle.Render(keys)
}
