package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"findash/internal/i18n"
)

func TestCurrencyRomanianGrouping(t *testing.T) {
	defer i18n.Set(i18n.RO)
	i18n.Set(i18n.RO)

	assert.Equal(t, "1.234,56 RON", Currency(1234.56))
	assert.Equal(t, "-1.234,56 RON", Currency(-1234.56))
	assert.Equal(t, "0,00 RON", Currency(0))
}

func TestCurrencyEnglishGrouping(t *testing.T) {
	defer i18n.Set(i18n.RO)
	i18n.Set(i18n.EN)

	assert.Equal(t, "1,234.56 RON", Currency(1234.56))
	assert.Equal(t, "98,450.25 RON", Currency(98450.25))
}

func TestDateParsesWireFormats(t *testing.T) {
	assert.Equal(t, "05.03.2024", Date("2024-03-05T12:30:00Z"))
	assert.Equal(t, "05.03.2024", Date("2024-03-05T12:30:00"))
	assert.Equal(t, "05.03.2024", Date("2024-03-05"))
}

func TestDateKeepsUnparseableInput(t *testing.T) {
	assert.Equal(t, "soon", Date("soon"))
	assert.Equal(t, "", Date(""))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "05.03.2024 12:30", DateTime("2024-03-05T12:30:00Z"))
}

func TestAgoFallsBackForRomanian(t *testing.T) {
	defer i18n.Set(i18n.RO)
	i18n.Set(i18n.RO)
	assert.Equal(t, "05.03.2024", Ago("2024-03-05T12:30:00Z"))
	assert.Equal(t, "garbage", Ago("garbage"))
}
