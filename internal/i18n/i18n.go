package i18n

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
)

// Translator holds the per-language string tables the templates render from.
// Every supported locale must define the exact same key set; Load fails
// otherwise, so a missing translation is caught at startup rather than as a
// blank label in production.
type Translator struct {
	defaultLang string
	tables      map[string]map[string]string
}

// Load reads one <lang>.yaml per supported language from dir.
func Load(dir string, supported []string, defaultLang string) (*Translator, error) {
	if len(supported) == 0 {
		return nil, fmt.Errorf("i18n: no supported languages configured")
	}

	tables := make(map[string]map[string]string, len(supported))
	for _, lang := range supported {
		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, lang+".yaml"))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("i18n: reading locale %q: %w", lang, err)
		}

		table := make(map[string]string)
		for _, key := range v.AllKeys() {
			table[key] = v.GetString(key)
		}
		tables[lang] = table
	}

	if err := checkKeyParity(tables); err != nil {
		return nil, err
	}

	if _, ok := tables[defaultLang]; !ok {
		return nil, fmt.Errorf("i18n: default language %q is not among supported locales", defaultLang)
	}

	return &Translator{defaultLang: defaultLang, tables: tables}, nil
}

// checkKeyParity verifies every locale defines the same keys.
func checkKeyParity(tables map[string]map[string]string) error {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	ref := langs[0]
	for _, lang := range langs[1:] {
		for key := range tables[ref] {
			if _, ok := tables[lang][key]; !ok {
				return fmt.Errorf("i18n: locale %q is missing key %q present in %q", lang, key, ref)
			}
		}
		for key := range tables[lang] {
			if _, ok := tables[ref][key]; !ok {
				return fmt.Errorf("i18n: locale %q is missing key %q present in %q", ref, key, lang)
			}
		}
	}
	return nil
}

// Supported reports whether lang is a loaded locale.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.tables[lang]
	return ok
}

// Default returns the fallback language code.
func (t *Translator) Default() string {
	return t.defaultLang
}

// T resolves one key for the given language, falling back to the default
// locale and finally to the key itself.
func (t *Translator) T(lang, key string) string {
	if table, ok := t.tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := t.tables[t.defaultLang][key]; ok {
		return s
	}
	return key
}

// Table returns the full string table for a language, for handing to
// templates in one piece. Unknown languages get the default table.
func (t *Translator) Table(lang string) map[string]string {
	if table, ok := t.tables[lang]; ok {
		return table
	}
	return t.tables[t.defaultLang]
}
