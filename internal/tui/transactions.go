package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findash/internal/client"
	"findash/internal/domain"
	"findash/internal/format"
	"findash/internal/i18n"
	"findash/internal/query"
)

const defaultTransactionsLimit = 10

type transactionsLoadedMsg struct {
	seq  int
	page client.TransactionPage
}

type transactionsFailedMsg struct {
	seq int
	err error
}

// Filter form field order.
const (
	fieldAccount = iota
	fieldStartDate
	fieldEndDate
	fieldLimit
	fieldCount
)

// transactionsModel drives the transactions page: the filtered paginated
// list plus the filter form. Account names come from a secondary accounts
// fetch; when that fails rows fall back to raw IBANs.
type transactionsModel struct {
	api     API
	state   viewState
	spinner spinner.Model

	transactions []domain.Transaction
	byIBAN       map[string]domain.Account
	pag          *domain.Pagination

	filters query.Filters
	page    int

	editing  bool
	inputs   [fieldCount]textinput.Model
	focusIdx int

	err   error
	seq   int
	width int
}

func newTransactionsModel(api API, limit int) transactionsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	if limit <= 0 {
		limit = defaultTransactionsLimit
	}

	m := transactionsModel{
		api:     api,
		spinner: sp,
		filters: query.Filters{Limit: limit},
		page:    1,
	}
	for i := range m.inputs {
		in := textinput.New()
		in.CharLimit = 34
		in.Width = 26
		m.inputs[i] = in
	}
	m.inputs[fieldAccount].Placeholder = "RO.."
	m.inputs[fieldLimit].CharLimit = 3
	m.inputs[fieldLimit].Width = 4
	return m
}

func (m *transactionsModel) activate() tea.Cmd {
	if m.state == stateIdle {
		return m.load()
	}
	return nil
}

func (m *transactionsModel) editingFilters() bool { return m.editing }

func (m *transactionsModel) load() tea.Cmd {
	m.seq++
	seq := m.seq
	m.state = stateLoading
	m.err = nil

	params := m.filters.Build(m.page)
	api := m.api
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		page, err := api.FetchTransactionPage(context.Background(), params)
		if err != nil {
			return transactionsFailedMsg{seq: seq, err: err}
		}
		return transactionsLoadedMsg{seq: seq, page: page}
	})
}

func (m *transactionsModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transactionsLoadedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateReady
		m.transactions = msg.page.Transactions.Items
		m.pag = msg.page.Transactions.Pagination
		m.byIBAN = domain.AccountsByIBAN(msg.page.Accounts)
		if m.pag != nil {
			m.page = m.pag.Page
		}
	case transactionsFailedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateError
		m.err = msg.err
		m.transactions = nil
		m.pag = nil
	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
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
		case "f":
			m.openForm()
			return textinput.Blink
		case "x":
			return m.resetFilters()
		case "r":
			if m.state != stateLoading {
				return m.load()
			}
		}
	}
	return nil
}

func (m *transactionsModel) openForm() {
	m.editing = true
	m.focusIdx = 0
	m.inputs[fieldAccount].SetValue(m.filters.Account)
	m.inputs[fieldStartDate].SetValue(m.filters.StartDate)
	m.inputs[fieldEndDate].SetValue(m.filters.EndDate)
	m.inputs[fieldLimit].SetValue(strconv.Itoa(m.filters.Limit))
	m.inputs[fieldStartDate].Placeholder = i18n.T("filters.start_date_placeholder")
	m.inputs[fieldEndDate].Placeholder = i18n.T("filters.end_date_placeholder")
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
}

func (m *transactionsModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.editing = false
		return nil
	case "enter":
		return m.applyFilters()
	case "tab", "down":
		return m.focusField((m.focusIdx + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focusIdx + fieldCount - 1) % fieldCount)
	}
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return cmd
}

func (m *transactionsModel) focusField(idx int) tea.Cmd {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	return m.inputs[m.focusIdx].Focus()
}

// applyFilters reads the form, coerces the page size, resets to the first
// page and fetches. Changed filters invalidate the old page position.
func (m *transactionsModel) applyFilters() tea.Cmd {
	m.editing = false
	m.filters.Account = strings.TrimSpace(m.inputs[fieldAccount].Value())
	m.filters.StartDate = strings.TrimSpace(m.inputs[fieldStartDate].Value())
	m.filters.EndDate = strings.TrimSpace(m.inputs[fieldEndDate].Value())
	if n, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldLimit].Value())); err == nil && n > 0 {
		m.filters.Limit = n
	}
	m.page = 1
	return m.load()
}

// resetFilters restores the defaults, resets to the first page and fetches.
func (m *transactionsModel) resetFilters() tea.Cmd {
	m.editing = false
	m.filters = query.Filters{Limit: defaultTransactionsLimit}
	m.page = 1
	return m.load()
}

func (m *transactionsModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 " + i18n.T("transactions.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("transactions.subtitle")))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.formView())
		return b.String()
	}

	switch {
	case m.state == stateError:
		b.WriteString(errorStyle.Render(fetchErrorText(m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: " + i18n.T("common.retry")))
		return b.String()
	case m.state == stateLoading && len(m.transactions) == 0:
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		return b.String()
	}

	if m.state == stateLoading {
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		b.WriteString("\n\n")
	}

	if m.filters.Active() {
		b.WriteString(m.activeFiltersView())
		b.WriteString("\n\n")
	}

	if len(m.transactions) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("transactions.no_transactions")))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("f: " + i18n.T("transactions.filters")))
		return b.String()
	}

	for _, tx := range m.transactions {
		b.WriteString(m.rowView(tx))
		b.WriteString("\n")
	}

	if bar := renderPaginationBar(m.pag); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}
	return b.String()
}

func (m *transactionsModel) rowView(tx domain.Transaction) string {
	var row strings.Builder
	row.WriteString(renderAmount(tx.Amount))
	row.WriteString(mutedStyle.Render(" " + tx.Currency))
	row.WriteString("  ")

	// Best-effort enrichment: bank and company when the account list is
	// available, the raw IBAN otherwise.
	if acc, ok := m.byIBAN[tx.Account]; ok {
		row.WriteString(lipgloss.NewStyle().Bold(true).Render(acc.Banca))
		row.WriteString(mutedStyle.Render(" " + acc.Compania))
	} else {
		row.WriteString(tx.Account)
	}
	row.WriteString("\n  ")
	if tx.Description != "" {
		row.WriteString(tx.Description)
		row.WriteString("  ")
	}
	row.WriteString(mutedStyle.Render(format.DateTime(tx.CreatedAt)))
	if tx.InvoiceNumber != "" {
		row.WriteString(mutedStyle.Render("  " + i18n.T("transactions.invoice") + ": " + tx.InvoiceNumber))
	}
	return row.String()
}

func (m *transactionsModel) activeFiltersView() string {
	var tags []string
	if m.filters.Account != "" {
		label := m.filters.Account
		if acc, ok := m.byIBAN[m.filters.Account]; ok {
			label = acc.Banca
		}
		tags = append(tags, filterTagStyle.Render(i18n.T("transactions.account")+": "+label))
	}
	if m.filters.StartDate != "" {
		tags = append(tags, filterTagStyle.Render(i18n.T("transactions.start_date")+": "+m.filters.StartDate))
	}
	if m.filters.EndDate != "" {
		tags = append(tags, filterTagStyle.Render(i18n.T("transactions.end_date")+": "+m.filters.EndDate))
	}
	return labelStyle.Render(i18n.T("transactions.active_filters")+": ") +
		lipgloss.JoinHorizontal(lipgloss.Center, tags...)
}

func (m *transactionsModel) formView() string {
	labels := [fieldCount]string{
		i18n.T("transactions.account") + " (" + i18n.T("transactions.all_accounts") + ": \"\")",
		i18n.T("transactions.start_date"),
		i18n.T("transactions.end_date"),
		i18n.T("transactions.limit"),
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("transactions.filters")))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: " + i18n.T("transactions.apply_filters") +
		" • esc: " + i18n.T("common.cancel") +
		" • tab: ↓"))
	return cardStyle.Render(b.String())
}
