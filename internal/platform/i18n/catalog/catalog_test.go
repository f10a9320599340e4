package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if got := strings.Join(bundle.Locales(), ","); got != "en,es" {
		t.Fatalf("Locales() = %q, want %q", got, "en,es")
	}
	for _, locale := range []string{"en", "es"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		messages := bundle.LocaleMessages(locale)
		// appName lives in core.yaml, dashboardTitle in pages.yaml.
		for _, key := range []string{"appName", "dashboardTitle"} {
			if _, ok := messages[key]; !ok {
				t.Fatalf("%s catalog missing key %q", locale, key)
			}
		}
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	t.Parallel()

	en := Default().LocaleMessages("en")
	es := Default().LocaleMessages("es")
	for key := range en {
		if _, ok := es[key]; !ok {
			t.Fatalf("es catalog missing key %q", key)
		}
	}
	for key := range es {
		if _, ok := en[key]; !ok {
			t.Fatalf("en catalog missing key %q", key)
		}
	}
}

func TestDefaultTableKeepsPlaceholders(t *testing.T) {
	t.Parallel()

	table := Default().Table()
	if got := table["en"]["welcomeUser"]; got != "Welcome, {name}!" {
		t.Fatalf("welcomeUser = %q, want %q", got, "Welcome, {name}!")
	}
	if got := table["en"]["pricePerMonth"]; !strings.Contains(got, "{price}") {
		t.Fatalf("pricePerMonth = %q, want {price} token", got)
	}
}

func TestTableReturnsCopies(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	table := bundle.Table()
	table["en"]["appName"] = "mutated"
	if got := bundle.LocaleMessages("en")["appName"]; got == "mutated" {
		t.Fatal("expected table mutation to leave bundle untouched")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/core.yaml"), `locale: "en"
namespace: "core"
messages:
  "appName": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/pages.yaml"), `locale: "en"
namespace: "pages"
messages:
  "appName": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/core.yaml"), `locale: "es"
namespace: "core"
messages:
  "appName": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/es/core.yaml"), `locale: "es"
namespace: "core"
messages:
  "appName": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestMissingKeysReportsGapsPerLocale(t *testing.T) {
	t.Parallel()

	if got := Default().MissingKeys(Default().Table()); len(got) != 0 {
		t.Fatalf("MissingKeys(default table) = %v, want none", got)
	}

	table := Default().Table()
	delete(table["es"], "welcomeUser")
	delete(table["es"], "appName")
	delete(table, "en")
	missing := Default().MissingKeys(table)
	if got := strings.Join(missing["es"], ","); got != "appName,welcomeUser" {
		t.Fatalf("missing es keys = %q, want %q", got, "appName,welcomeUser")
	}
	if got, want := len(missing["en"]), len(Default().LocaleMessages("en")); got != want {
		t.Fatalf("missing en keys = %d, want %d", got, want)
	}

	var nilBundle *Bundle
	if got := nilBundle.MissingKeys(table); len(got) != 0 {
		t.Fatalf("nil bundle MissingKeys() = %v, want none", got)
	}
}

func TestLoadDocument(t *testing.T) {
	t.Parallel()

	table, err := LoadDocument(strings.NewReader(`{"en":{"welcomeUser":"Hi {name}"},"ES-es":{"welcomeUser":"Hola {name}"}}`))
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if got := table["en"]["welcomeUser"]; got != "Hi {name}" {
		t.Fatalf("en welcomeUser = %q, want %q", got, "Hi {name}")
	}
	if got := table["es"]["welcomeUser"]; got != "Hola {name}" {
		t.Fatalf("es welcomeUser = %q, want %q", got, "Hola {name}")
	}
}

func TestLoadDocumentRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed":   `{"en":`,
		"empty":       `{}`,
		"unsupported": `{"en":{"a":"b"},"fr":{"a":"b"}}`,
		"no base":     `{"es":{"a":"b"}}`,
		"duplicate":   `{"en":{"a":"b"},"en-US":{"a":"c"}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadDocument(strings.NewReader(doc)); err == nil {
				t.Fatalf("LoadDocument(%s) expected error", doc)
			}
		})
	}
}

func TestParseCatalogFileRejectsUnquotedEntries(t *testing.T) {
	t.Parallel()

	_, err := parseCatalogFile([]byte("locale: \"en\"\nnamespace: \"core\"\nmessages:\n  appName: nope\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
