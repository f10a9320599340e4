package langcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

func TestResolveDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	if got := Resolve(nil); got != "en" {
		t.Fatalf("Resolve(nil) = %q, want %q", got, "en")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := Resolve(req); got != "en" {
		t.Fatalf("Resolve(no cookie) = %q, want %q", got, "en")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: "fr"})
	if got := Resolve(req); got != "en" {
		t.Fatalf("Resolve(fr) = %q, want %q", got, "en")
	}
}

func TestResolveReadsStoredLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "es"})
	if got := Resolve(req); got != "es" {
		t.Fatalf("Resolve() = %q, want %q", got, "es")
	}
}

func TestSetPersistsForAYear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	code, ok := Set(rr, "es-MX")
	if !ok || code != "es" {
		t.Fatalf("Set() = %q, %v; want es, true", code, ok)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "es" {
		t.Fatalf("cookies = %+v, want lang=es", cookies)
	}
	if cookies[0].MaxAge != int(maxAge.Seconds()) {
		t.Fatalf("MaxAge = %d, want %d", cookies[0].MaxAge, int(maxAge.Seconds()))
	}

	rr = httptest.NewRecorder()
	if _, ok := Set(rr, "klingon"); ok {
		t.Fatal("expected unsupported language to be rejected")
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("unexpected cookie %q", got)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("cookies = %+v, want expired lang cookie", cookies)
	}
}

func TestOptionsMarksActiveLanguage(t *testing.T) {
	t.Parallel()

	table := i18n.Table{"es": {"lang_en": "English", "lang_es": "Español"}}
	options := Options(i18n.NewTranslator(table, "es"))
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Code != "en" || options[0].Active {
		t.Fatalf("options[0] = %+v, want inactive en", options[0])
	}
	if options[1].Label != "Español" || !options[1].Active {
		t.Fatalf("options[1] = %+v, want active Español", options[1])
	}
}
