// Package routepath stores canonical HTTP paths and the page route table for
// the selfcare service.
package routepath

import (
	"path"
	"strings"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

const (
	Root              = "/"
	Login             = "/index.html"
	Dashboard         = "/dashboard.html"
	SubscriberDetails = "/subscriber_details.html"
	Billing           = "/billing.html"
	Shop              = "/shop.html"
	Profile           = "/profile.html"
	Logout            = "/logout"
	Language          = "/lang"
	SubscriberSelect  = "/subscribers/select"
	Health            = "/up"
	Metrics           = "/metrics"
	StaticPrefix      = "/static/"
)

// AppNameKey is the translation key of the application name.
const AppNameKey = "appName"

// Route enumerates the pages the router can dispatch to.
type Route int

const (
	RouteUnknown Route = iota
	RouteLogin
	RouteDashboard
	RouteSubscriberDetails
	RouteBilling
	RouteShop
	RouteProfile
)

var routePaths = map[Route]string{
	RouteLogin:             Login,
	RouteDashboard:         Dashboard,
	RouteSubscriberDetails: SubscriberDetails,
	RouteBilling:           Billing,
	RouteShop:              Shop,
	RouteProfile:           Profile,
}

// All returns every known route in table order.
func All() []Route {
	return []Route{RouteLogin, RouteDashboard, RouteSubscriberDetails, RouteBilling, RouteShop, RouteProfile}
}

// Protected returns the routes that require a signed-in user.
func Protected() []Route {
	return []Route{RouteDashboard, RouteSubscriberDetails, RouteBilling, RouteShop, RouteProfile}
}

// Path returns the canonical URL path, or "" for RouteUnknown.
func (r Route) Path() string {
	return routePaths[r]
}

// Identifier returns the page identifier, the final segment of Path.
func (r Route) Identifier() string {
	return Identifier(r.Path())
}

// RequiresSession reports whether the page needs a signed-in user. Every page
// except the login page does, including unknown ones.
func (r Route) RequiresSession() bool {
	return r != RouteLogin
}

// String names the route for logs and errors.
func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteDashboard:
		return "dashboard"
	case RouteSubscriberDetails:
		return "subscriber_details"
	case RouteBilling:
		return "billing"
	case RouteShop:
		return "shop"
	case RouteProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Identifier returns the final segment of a URL path. "/" and paths ending
// in "/" yield "".
func Identifier(urlPath string) string {
	idx := strings.LastIndex(urlPath, "/")
	return urlPath[idx+1:]
}

// Lookup maps a page identifier onto its route by exact match. "" and
// "index.html" are the login page.
func Lookup(identifier string) Route {
	if identifier == "" {
		return RouteLogin
	}
	for _, route := range All() {
		if route.Identifier() == identifier {
			return route
		}
	}
	return RouteUnknown
}

// TitleKeyPrefix strips the extension from identifier and camel-cases the
// subscriber detail page name.
func TitleKeyPrefix(identifier string) string {
	prefix := strings.TrimSuffix(identifier, path.Ext(identifier))
	if prefix == "subscriber_details" {
		return "subscriberDetails"
	}
	return prefix
}

// TitleKey returns the translation key of a page title. The login page is
// titled by "loginTitle" under either of its identifiers.
func TitleKey(identifier string) string {
	if Lookup(identifier) == RouteLogin {
		return "loginTitle"
	}
	return TitleKeyPrefix(identifier) + "Title"
}

// Title composes "{PageTitle} - {AppName}" for identifier.
func Title(tr i18n.Translator, identifier string) string {
	return tr.T(TitleKey(identifier)) + " - " + tr.T(AppNameKey)
}

var fixedPaths = []string{Logout, Language, SubscriberSelect, Health, Metrics}

// MetricLabel maps a request path onto a bounded label: the canonical page
// path, a fixed endpoint, the static prefix, or "" for anything else.
func MetricLabel(urlPath string) string {
	for _, fixed := range fixedPaths {
		if urlPath == fixed {
			return fixed
		}
	}
	if strings.HasPrefix(urlPath, StaticPrefix) {
		return StaticPrefix
	}
	if route := Lookup(Identifier(urlPath)); route != RouteUnknown {
		return route.Path()
	}
	return ""
}
