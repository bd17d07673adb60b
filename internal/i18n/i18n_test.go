package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInBothLocales(t *testing.T) {
	defer Set(RO)

	require.True(t, Set(RO))
	assert.Equal(t, "Conturi", T("navigation.accounts"))
	assert.Equal(t, "Se încarcă...", T("common.loading"))

	require.True(t, Set(EN))
	assert.Equal(t, "Accounts", T("navigation.accounts"))
	assert.Equal(t, "Loading...", T("common.loading"))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	defer Set(RO)
	assert.Equal(t, "no.such.key", T("no.such.key"))
}

func TestSetRejectsUnknownLocale(t *testing.T) {
	defer Set(RO)
	require.True(t, Set(RO))
	assert.False(t, Set("de"))
	assert.Equal(t, RO, Current())
}

func TestToggle(t *testing.T) {
	defer Set(RO)
	Set(RO)
	assert.Equal(t, EN, Toggle())
	assert.Equal(t, EN, Current())
	assert.Equal(t, RO, Toggle())
}

// Both locale files must translate exactly the same keys; a key present in
// one table only would render as its raw key in the other language.
func TestLocaleTablesMatch(t *testing.T) {
	ro, en := tables[RO], tables[EN]
	require.NotEmpty(t, ro)
	for key := range ro {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from en", key)
	}
	for key := range en {
		_, ok := ro[key]
		assert.True(t, ok, "key %q missing from ro", key)
	}
}
