// Package format renders amounts and timestamps for the active locale.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"findash/internal/i18n"
)

var printers = map[i18n.Locale]*message.Printer{
	i18n.RO: message.NewPrinter(language.Romanian),
	i18n.EN: message.NewPrinter(language.English),
}

// Currency renders an amount with locale-aware digit grouping and the RON
// suffix the dashboard uses throughout (e.g. "1.234,56 RON" in Romanian).
func Currency(amount float64) string {
	p, ok := printers[i18n.Current()]
	if !ok {
		p = printers[i18n.RO]
	}
	return p.Sprintf("%.2f", amount) + " " + i18n.T("common.currency")
}

// Wire timestamps come from different backends in slightly different shapes.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWhen parses a created_at wire timestamp.
func ParseWhen(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders a wire timestamp as a short date. Values that do not parse
// are shown as-is rather than dropped.
func Date(s string) string {
	t, ok := ParseWhen(s)
	if !ok {
		return s
	}
	return t.Format("02.01.2006")
}

// DateTime renders a wire timestamp with the time of day included.
func DateTime(s string) string {
	t, ok := ParseWhen(s)
	if !ok {
		return s
	}
	return t.Format("02.01.2006 15:04")
}

// Ago renders a wire timestamp relative to now ("3 days ago"). The phrasing
// is English-only, so Romanian falls back to the short date.
func Ago(s string) string {
	t, ok := ParseWhen(s)
	if !ok {
		return s
	}
	if i18n.Current() != i18n.EN {
		return t.Format("02.01.2006")
	}
	return humanize.Time(t)
}
