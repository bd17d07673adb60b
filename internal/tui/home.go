package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findash/internal/domain"
	"findash/internal/format"
	"findash/internal/i18n"
)

type statsLoadedMsg struct {
	seq   int
	stats domain.Stats
}

type statsFailedMsg struct {
	seq int
	err error
}

// homeModel drives the summary page. Stats are refetched every time the page
// gains focus so the figures are never stale.
type homeModel struct {
	api     API
	state   viewState
	spinner spinner.Model
	stats   domain.Stats
	loaded  bool
	err     error
	seq     int
	width   int
}

func newHomeModel(api API) homeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	return homeModel{api: api, spinner: sp}
}

func (m *homeModel) load() tea.Cmd {
	m.seq++
	seq := m.seq
	m.state = stateLoading
	m.err = nil

	api := m.api
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		stats, err := api.Stats(context.Background())
		if err != nil {
			return statsFailedMsg{seq: seq, err: err}
		}
		return statsLoadedMsg{seq: seq, stats: stats}
	})
}

func (m *homeModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateReady
		m.stats = msg.stats
		m.loaded = true
	case statsFailedMsg:
		if msg.seq != m.seq {
			return nil
		}
		m.state = stateError
		m.err = msg.err
	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
	case tea.KeyMsg:
		if msg.String() == "r" && m.state != stateLoading {
			return m.load()
		}
	}
	return nil
}

func (m *homeModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📊 " + i18n.T("home.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("home.subtitle")))
	b.WriteString("\n\n")

	switch {
	case m.state == stateError:
		b.WriteString(errorStyle.Render(fetchErrorText(m.err)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: " + i18n.T("common.retry")))
		return b.String()
	case m.state == stateLoading && !m.loaded:
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		return b.String()
	}

	if m.state == stateLoading {
		b.WriteString(m.spinner.View() + " " + i18n.T("common.loading"))
		b.WriteString("\n\n")
	}

	balanceCard := labelStyle.Render("💰 "+i18n.T("home.total_balance")) + "\n" +
		renderAmount(m.stats.TotalBalance)
	countCard := labelStyle.Render("📈 "+i18n.T("home.total_transactions")) + "\n" +
		strconv.Itoa(m.stats.TransactionCount)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(balanceCard), " ", cardStyle.Render(countCard)))
	b.WriteString("\n\n")

	if len(m.stats.RecentTransactions) > 0 {
		b.WriteString(labelStyle.Render("🕒 " + i18n.T("home.recent_transactions")))
		b.WriteString("\n")
		for _, tx := range m.stats.RecentTransactions {
			b.WriteString("  ")
			b.WriteString(renderAmount(tx.Amount))
			b.WriteString("  ")
			b.WriteString(tx.Account)
			b.WriteString("  ")
			b.WriteString(mutedStyle.Render(format.Ago(tx.CreatedAt)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("⚡ " + i18n.T("home.quick_actions")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("2: " + i18n.T("home.view_accounts") + " • 3: " + i18n.T("home.view_transactions")))
	return b.String()
}
