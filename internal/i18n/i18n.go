// Package i18n provides the localized string tables of the client.
// English is the fallback source of truth for every key, including the
// denormalized test-title snapshots written into submissions.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Fallback is the language every lookup falls back to.
const Fallback = "en"

// Bundle holds the loaded string tables and a language matcher for
// normalizing user-supplied codes.
type Bundle struct {
	tables  map[string]map[string]string
	codes   []string
	matcher language.Matcher
}

// NewBundle loads every embedded locale table.
func NewBundle() (*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("reading locales: %w", err)
	}

	b := &Bundle{tables: make(map[string]map[string]string)}
	for _, e := range entries {
		code := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		raw, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, err
		}
		table := make(map[string]string)
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("decoding locale %s: %w", code, err)
		}
		b.tables[code] = table
		b.codes = append(b.codes, code)
	}

	// Fallback first so the matcher prefers it on no-confidence input.
	sort.Slice(b.codes, func(i, j int) bool {
		if b.codes[i] == Fallback {
			return true
		}
		if b.codes[j] == Fallback {
			return false
		}
		return b.codes[i] < b.codes[j]
	})

	tags := make([]language.Tag, len(b.codes))
	for i, code := range b.codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		tags[i] = tag
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Languages returns the supported language codes, fallback first.
func (b *Bundle) Languages() []string {
	out := make([]string, len(b.codes))
	copy(out, b.codes)
	return out
}

// Supported reports whether code names a loaded table.
func (b *Bundle) Supported(code string) bool {
	_, ok := b.tables[code]
	return ok
}

// Match normalizes a user-supplied language code to a supported one,
// falling back to English for anything unparseable or unknown.
func (b *Bundle) Match(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return Fallback
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return b.codes[idx]
}

// Lookup resolves key in the given language, falling back to English and
// finally to the key itself so a missing entry stays visible.
func (b *Bundle) Lookup(lang, key string) string {
	if table, ok := b.tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := b.tables[Fallback][key]; ok {
		return s
	}
	return key
}

// English resolves key in the fallback language. Denormalized snapshots
// (submission test names) always come from here.
func (b *Bundle) English(key string) string {
	return b.Lookup(Fallback, key)
}
