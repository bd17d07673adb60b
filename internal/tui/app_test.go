package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/internal/i18n"
)

func TestAppStartsOnHome(t *testing.T) {
	a := NewApp(&fakeAPI{}, nil)
	require.NotNil(t, a.Init())
	assert.Equal(t, pageHome, a.page)
	assert.Equal(t, stateLoading, a.home.state)
}

func TestAppPageSwitchTriggersFetch(t *testing.T) {
	a := NewApp(&fakeAPI{}, nil)

	_, cmd := a.Update(keyMsg("2"))
	require.NotNil(t, cmd)
	assert.Equal(t, pageAccounts, a.page)
	assert.Equal(t, stateLoading, a.accounts.state)

	_, cmd = a.Update(keyMsg("3"))
	require.NotNil(t, cmd)
	assert.Equal(t, pageTransactions, a.page)
	assert.Equal(t, stateLoading, a.transactions.state)
}

func TestAppHomeRefetchesOnEveryVisit(t *testing.T) {
	a := NewApp(&fakeAPI{}, nil)
	a.Init()
	first := a.home.seq

	a.Update(keyMsg("2"))
	_, cmd := a.Update(keyMsg("1"))
	require.NotNil(t, cmd)
	assert.Greater(t, a.home.seq, first, "stats are fetched fresh on each visit")
}

func TestAppLanguageToggle(t *testing.T) {
	i18n.Set(i18n.RO)
	defer i18n.Set(i18n.RO)

	a := NewApp(&fakeAPI{}, nil)
	a.Update(keyMsg("l"))
	assert.Equal(t, i18n.EN, i18n.Current())
	assert.Contains(t, a.View(), "Financial Dashboard")

	a.Update(keyMsg("l"))
	assert.Equal(t, i18n.RO, i18n.Current())
	assert.Contains(t, a.View(), "Panou Financiar")
}

func TestAppRoutesCompletionToOwningPage(t *testing.T) {
	a := NewApp(&fakeAPI{}, nil)
	a.Update(keyMsg("2"))

	// An accounts completion lands on the accounts page even after the user
	// moved elsewhere.
	a.Update(keyMsg("3"))
	a.Update(accountsLoadedMsg{seq: a.accounts.seq, list: sampleAccounts()})
	assert.Equal(t, stateReady, a.accounts.state)
	assert.Len(t, a.accounts.accounts, 2)
}
