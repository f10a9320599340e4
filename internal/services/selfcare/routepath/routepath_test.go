package routepath

import (
	"testing"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

func TestPageRouteConstants(t *testing.T) {
	t.Parallel()

	if Login != "/index.html" {
		t.Fatalf("Login = %q", Login)
	}
	if SubscriberDetails != "/subscriber_details.html" {
		t.Fatalf("SubscriberDetails = %q", SubscriberDetails)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":                        "",
		"/index.html":              "index.html",
		"/app/billing.html":        "billing.html",
		"/nested/":                 "",
		"/subscriber_details.html": "subscriber_details.html",
		"relative/shop.html":       "shop.html",
		"":                         "",
	}
	for in, want := range tests {
		if got := Identifier(in); got != want {
			t.Fatalf("Identifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupIsExactAndExhaustive(t *testing.T) {
	t.Parallel()

	if got := Lookup(""); got != RouteLogin {
		t.Fatalf("Lookup(\"\") = %v, want login", got)
	}
	for _, route := range All() {
		if got := Lookup(route.Identifier()); got != route {
			t.Fatalf("Lookup(%q) = %v, want %v", route.Identifier(), got, route)
		}
	}
	for _, identifier := range []string{"Dashboard.html", "dashboard", "dashboard.htm", "reports.html"} {
		if got := Lookup(identifier); got != RouteUnknown {
			t.Fatalf("Lookup(%q) = %v, want unknown", identifier, got)
		}
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	t.Parallel()

	if RouteLogin.RequiresSession() {
		t.Fatal("login must not require a session")
	}
	if !RouteUnknown.RequiresSession() {
		t.Fatal("unknown pages must require a session")
	}
	for _, route := range Protected() {
		if !route.RequiresSession() {
			t.Fatalf("%v must require a session", route)
		}
		if route.Path() == "" {
			t.Fatalf("%v has no path", route)
		}
	}
}

func TestTitleKeyPrefix(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"dashboard.html":          "dashboard",
		"subscriber_details.html": "subscriberDetails",
		"billing.html":            "billing",
		"index.html":              "index",
		"weird_page.html":         "weird_page",
		"noext":                   "noext",
	}
	for in, want := range tests {
		if got := TitleKeyPrefix(in); got != want {
			t.Fatalf("TitleKeyPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleUsesTranslator(t *testing.T) {
	t.Parallel()

	tr := i18n.NewTranslator(i18n.Table{"en": {
		"appName":                "Telco Dashboard",
		"subscriberDetailsTitle": "Subscriber Details",
		"loginTitle":             "Login",
	}}, "en")

	if got := Title(tr, "subscriber_details.html"); got != "Subscriber Details - Telco Dashboard" {
		t.Fatalf("Title() = %q", got)
	}
	if got := Title(tr, "reports.html"); got != "reportsTitle - Telco Dashboard" {
		t.Fatalf("Title(unknown) = %q", got)
	}
	if got := Title(tr, ""); got != "Login - Telco Dashboard" {
		t.Fatalf("Title(root) = %q", got)
	}
}

func TestMetricLabelIsBounded(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":                    Login,
		"/index.html":          Login,
		"/a/b/billing.html":    Billing,
		"/logout":              Logout,
		"/static/app.js":       StaticPrefix,
		"/metrics":             Metrics,
		"/reports.html":        "",
		"/subscribers/select":  SubscriberSelect,
		"/subscribers/unknown": "",
	}
	for in, want := range tests {
		if got := MetricLabel(in); got != want {
			t.Fatalf("MetricLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
