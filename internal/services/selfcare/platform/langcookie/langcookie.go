// Package langcookie persists the display language preference.
//
// The preference outlives the browser session; logout clears it explicitly.
package langcookie

import (
	"net/http"
	"time"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

// Name is the language preference cookie.
const Name = "lang"

const maxAge = 365 * 24 * time.Hour

// LanguageOption is one entry of the header language selector.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
}

// Resolve returns the stored language, or the default when none or an
// unsupported value is stored.
func Resolve(r *http.Request) string {
	if r == nil {
		return i18n.DefaultLanguage
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return i18n.DefaultLanguage
	}
	if code, ok := i18n.Normalize(cookie.Value); ok {
		return code
	}
	return i18n.DefaultLanguage
}

// Set persists code. It reports false, writing nothing, for unsupported codes.
func Set(w http.ResponseWriter, code string) (string, bool) {
	normalized, ok := i18n.Normalize(code)
	if !ok || w == nil {
		return "", false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    normalized,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return normalized, true
}

// Clear removes the stored preference.
func Clear(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// Options lists the supported languages with the active one marked. Labels
// come from the "lang_<code>" keys of tr.
func Options(tr i18n.Translator) []LanguageOption {
	languages := i18n.Languages()
	out := make([]LanguageOption, 0, len(languages))
	for _, code := range languages {
		out = append(out, LanguageOption{
			Code:   code,
			Label:  tr.T("lang_" + code),
			Active: code == tr.Language(),
		})
	}
	return out
}
