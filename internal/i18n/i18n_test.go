package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLocale(t *testing.T, dir, lang, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang+".yaml"), []byte(content), 0644))
}

func TestLoadAndTranslate(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "pl", "login: \"Zaloguj się\"\nlogout: \"Wyloguj się\"\n")
	writeLocale(t, dir, "en", "login: \"Log in\"\nlogout: \"Log out\"\n")

	tr, err := Load(dir, []string{"pl", "en"}, "pl")
	require.NoError(t, err)

	assert.Equal(t, "Log in", tr.T("en", "login"))
	assert.Equal(t, "Zaloguj się", tr.T("pl", "login"))

	// Unknown language falls back to the default locale.
	assert.Equal(t, "Zaloguj się", tr.T("de", "login"))

	// Unknown key falls back to the key itself.
	assert.Equal(t, "nonexistent", tr.T("pl", "nonexistent"))

	assert.True(t, tr.Supported("en"))
	assert.False(t, tr.Supported("de"))
	assert.Equal(t, "pl", tr.Default())
}

func TestLoadRejectsKeyMismatch(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "pl", "login: \"Zaloguj się\"\nextra: \"tylko po polsku\"\n")
	writeLocale(t, dir, "en", "login: \"Log in\"\n")

	_, err := Load(dir, []string{"pl", "en"}, "pl")
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDefault(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "pl", "login: \"Zaloguj się\"\n")

	_, err := Load(dir, []string{"pl"}, "de")
	assert.Error(t, err)
}

func TestShippedLocalesHaveParity(t *testing.T) {
	_, err := Load("../../configs/locales", []string{"pl", "en"}, "pl")
	assert.NoError(t, err)
}

func TestTableReturnsFullSet(t *testing.T) {
	dir := t.TempDir()
	writeLocale(t, dir, "pl", "login: \"Zaloguj się\"\n")
	writeLocale(t, dir, "en", "login: \"Log in\"\n")

	tr, err := Load(dir, []string{"pl", "en"}, "pl")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"login": "Log in"}, tr.Table("en"))
	assert.Equal(t, tr.Table("pl"), tr.Table("de"))
}
