package i18n

import "testing"

var testTable = Table{
	"en": {
		"appName":     "Telco Dashboard",
		"welcomeUser": "Welcome, {name}! Good to see you, {name}.",
		"usageLine":   "{label}: {used}/{total} {unit}",
	},
	"es": {
		"appName": "Panel Telco",
	},
}

func TestTranslateReturnsTemplate(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "es")
	if got := tr.T("appName"); got != "Panel Telco" {
		t.Fatalf("T(appName) = %q, want %q", got, "Panel Telco")
	}
}

func TestTranslateMissingKeyReturnsKey(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "en")
	if got := tr.T("x"); got != "x" {
		t.Fatalf("T(x) = %q, want %q", got, "x")
	}
}

func TestTranslateMissingLanguageReturnsKey(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "fr")
	if got := tr.T("appName"); got != "appName" {
		t.Fatalf("T(appName) = %q, want %q", got, "appName")
	}
}

func TestTranslateReplacesFirstOccurrenceOnly(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "en")
	got := tr.T("welcomeUser", R("name", "Ann"))
	want := "Welcome, Ann! Good to see you, {name}."
	if got != want {
		t.Fatalf("T(welcomeUser) = %q, want %q", got, want)
	}
}

func TestTranslateStringifiesValues(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "en")
	got := tr.T("usageLine", R("label", "Data"), R("used", 3.5), R("total", 10), R("unit", "GB"))
	if got != "Data: 3.5/10 GB" {
		t.Fatalf("T(usageLine) = %q", got)
	}
}

func TestTranslateIgnoresUnknownReplacement(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(testTable, "es")
	if got := tr.T("appName", R("name", "Ann")); got != "Panel Telco" {
		t.Fatalf("T(appName) = %q", got)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "en", want: "en", ok: true},
		{raw: "es-MX", want: "es", ok: true},
		{raw: " EN-us ", want: "en", ok: true},
		{raw: "fr", ok: false},
		{raw: "", ok: false},
		{raw: "not a tag", ok: false},
	}
	for _, tc := range tests {
		got, ok := Normalize(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Normalize(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLanguagesReturnsCopy(t *testing.T) {
	t.Parallel()

	langs := Languages()
	if len(langs) != 2 || langs[0] != "en" || langs[1] != "es" {
		t.Fatalf("Languages() = %v", langs)
	}
	langs[0] = "xx"
	if Languages()[0] != "en" {
		t.Fatal("Languages() exposed internal slice")
	}
}
