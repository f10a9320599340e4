// Package i18n resolves display copy from a translation table.
//
// A Translator is an immutable value bound to one language. Handlers build one
// per request and pass it into every render call; nothing in this package holds
// a current language.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no preference is stored.
const DefaultLanguage = "en"

var supportedLanguages = []string{"en", "es"}

// Table maps a language code to its key -> template messages.
// Tables are treated as read-only once handed to a Translator.
type Table map[string]map[string]string

// Has reports whether the table defines messages for lang.
func (t Table) Has(lang string) bool {
	_, ok := t[lang]
	return ok
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// Normalize maps a raw language value such as "es-MX" or "EN" onto a supported
// code. The bool is false when the value is unparseable or unsupported.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := base.String()
	for _, supported := range supportedLanguages {
		if code == supported {
			return code, true
		}
	}
	return "", false
}

// Replacement is one named value substituted into a `{name}` token.
type Replacement struct {
	Name  string
	Value any
}

// R builds a Replacement.
func R(name string, value any) Replacement {
	return Replacement{Name: name, Value: value}
}

// Translator looks up messages for a single language.
type Translator struct {
	lang     string
	messages map[string]string
}

// NewTranslator binds table to lang. An unknown lang yields a translator that
// echoes keys back.
func NewTranslator(table Table, lang string) Translator {
	return Translator{lang: lang, messages: table[lang]}
}

// Language returns the bound language code.
func (t Translator) Language() string {
	return t.lang
}

// T returns the template for key with replacements applied in order.
//
// A missing language or key yields key itself. Each replacement fills only the
// first `{name}` token of the template.
func (t Translator) T(key string, replacements ...Replacement) string {
	text, ok := t.messages[key]
	if !ok {
		return key
	}
	for _, r := range replacements {
		text = strings.Replace(text, "{"+r.Name+"}", fmt.Sprint(r.Value), 1)
	}
	return text
}
