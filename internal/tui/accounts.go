package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findash/internal/client"
	"findash/internal/domain"
	"findash/internal/format"
	"findash/internal/i18n"
	"findash/internal/query"
)

// Six per page keeps the card list on one screen, same as the web grid.
const accountsPerPage = 6

type accountsLoadedMsg struct {
	seq  int
	list client.AccountList
}

type accountsFailedMsg struct {
	seq int
	err error
}

// accountsModel drives the accounts page. Stale data stays on screen while a
// reload is in flight; only a failure clears the view.
type accountsModel struct {
	api      API
	state    viewState
	spinner  spinner.Model
	accounts []domain.Account
	pag      *domain.Pagination
	page     int
	err      error
	// seq tags every fetch; completions carrying an older tag are dropped so
	// a slow response can never overwrite a newer one.
	seq   int
	width int
}

func newAccountsModel(api API) accountsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	return accountsModel{
		api:     api,
		spinner: sp,
		page:    1,
	}
}

// activate is called when the page gains focus; it fetches only when nothing
// has been loaded yet.
func (m *accountsModel) activate() tea.Cmd {
	if m.state == stateIdle {
		return m.load()
	}
	return nil
}

func (m *accountsModel) load() tea.Cmd {
	m.seq++
	seq := m.seq
	m.state = stateLoading
	m.err = nil

	params := query.Filters{Limit: accountsPerPage}.Build(m.page)
	api := m.api
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		list, err := api.ListAccounts(context.Background(), params)
		if err != nil {
			return accountsFailedMsg{seq: seq, err: err}
		}
		return accountsLoadedMsg{seq: seq, list: list}
	})
}

func (m *accountsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateReady
		m.accounts = msg.list.Items
		m.pag = msg.list.Pagination
		if m.pag != nil {
			m.page = m.pag.Page
		}
	case accountsFailedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateError
		m.err = msg.err
		m.accounts = nil
		m.pag = nil
	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			if m.state != stateLoading && m.pag != nil && m.pag.HasPrev {
				m.page--
				return m.load()
			}
		case "right":
			if m.state != stateLoading && m.pag != nil && m.pag.HasNext {
				m.page++
				return m.load()
			}
		case "r":
			if m.state != stateLoading {
				return m.load()
			}
		}
	}
	return nil
}

func (m *accountsModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("💳 " + i18n.T("accounts.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("accounts.subtitle")))
	b.WriteString("\n\n")

	switch {
	case m.state == stateError:
		b.WriteString(errorStyle.Render(fetchErrorText(m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: " + i18n.T("common.retry")))
		return b.String()
	case m.state == stateLoading && len(m.accounts) == 0:
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		return b.String()
	}

	if m.state == stateLoading {
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		b.WriteString("\n\n")
	}

	if len(m.accounts) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("accounts.no_accounts")))
		return b.String()
	}

	// Page total, not a global one: it sums exactly the visible accounts.
	b.WriteString(labelStyle.Render(i18n.T("accounts.total_balance") + ": "))
	b.WriteString(renderAmount(domain.TotalBalance(m.accounts)))
	b.WriteString("\n\n")

	for _, a := range m.accounts {
		var card strings.Builder
		card.WriteString(titleStyle.Render(a.Banca))
		card.WriteString(mutedStyle.Render("  " + a.Compania))
		card.WriteString("\n")
		card.WriteString(labelStyle.Render(i18n.T("accounts.iban")+": ") + a.IBAN)
		card.WriteString("\n")
		card.WriteString(labelStyle.Render(i18n.T("accounts.balance")+": ") + renderAmount(a.Sum))
		card.WriteString("\n")
		card.WriteString(mutedStyle.Render(i18n.T("accounts.created") + ": " + format.Date(a.CreatedAt)))
		b.WriteString(cardStyle.Render(card.String()))
		b.WriteString("\n")
	}

	if bar := renderPaginationBar(m.pag); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}
	return b.String()
}

func renderAmount(amount float64) string {
	s := format.Currency(amount)
	if amount < 0 {
		return negativeStyle.Render(s)
	}
	return positiveStyle.Render(s)
}
