// Package i18n holds the bilingual label tables and the process-wide locale
// selection. Lookup is a plain key -> string mapping over dotted namespaces;
// components read the current locale on every render instead of subscribing
// to changes.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// Locale identifies one of the two supported languages.
type Locale string

const (
	RO Locale = "ro"
	EN Locale = "en"
)

var (
	mu      sync.RWMutex
	current = RO
	tables  = map[Locale]map[string]string{}
)

func init() {
	for _, l := range []Locale{RO, EN} {
		table, err := loadTable(l)
		if err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
		tables[l] = table
	}
}

func loadTable(l Locale) (map[string]string, error) {
	raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", l))
	if err != nil {
		return nil, err
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("locale %s: %w", l, err)
	}
	flat := map[string]string{}
	if err := flatten("", nested, flat); err != nil {
		return nil, fmt.Errorf("locale %s: %w", l, err)
	}
	return flat, nil
}

// flatten collapses nested locale objects into dotted keys
// ("navigation": {"home": ...} -> "navigation.home").
func flatten(prefix string, nested map[string]json.RawMessage, out map[string]string) error {
	for key, raw := range nested {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[full] = s
			continue
		}
		var child map[string]json.RawMessage
		if err := json.Unmarshal(raw, &child); err != nil {
			return fmt.Errorf("key %s: expected string or object", full)
		}
		if err := flatten(full, child, out); err != nil {
			return err
		}
	}
	return nil
}

// Current returns the active locale.
func Current() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set switches the active locale. Values other than "ro" and "en" are
// rejected and leave the selection unchanged.
func Set(l Locale) bool {
	if l != RO && l != EN {
		return false
	}
	mu.Lock()
	current = l
	mu.Unlock()
	return true
}

// Toggle flips between the two languages and returns the new selection.
func Toggle() Locale {
	mu.Lock()
	defer mu.Unlock()
	if current == RO {
		current = EN
	} else {
		current = RO
	}
	return current
}

// T looks up a label by its dotted key in the active locale. Unknown keys
// come back verbatim so a missing label shows up in the UI instead of
// crashing it.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := tables[current][key]; ok {
		return s
	}
	return key
}
