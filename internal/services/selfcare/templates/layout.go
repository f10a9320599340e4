package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title string
	// Header is nil on the login page.
	Header *HeaderView
	Notice *Notice
}

type navLink struct {
	route routepath.Route
	key   string
}

var navLinks = []navLink{
	{route: routepath.RouteDashboard, key: "navDashboard"},
	{route: routepath.RouteBilling, key: "navBilling"},
	{route: routepath.RouteShop, key: "navShop"},
	{route: routepath.RouteProfile, key: "navProfile"},
}

// Layout renders the HTML document around its children.
func Layout(tr i18n.Translator, opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		h := newHTMLWriter(w)
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", tr.Language())
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", opts.Title)
		h.open("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"styles.css")
		h.open("script", "src", routepath.StaticPrefix+"app.js", "defer", boolAttr)
		h.close("script")
		h.raw("</head>")
		h.raw("<body>")
		if opts.Header != nil {
			h.component(ctx, Header(tr, *opts.Header))
		}
		h.open("main", "class", "container")
		if opts.Notice != nil {
			h.component(ctx, Alert(*opts.Notice))
		}
		h.component(ctx, children)
		h.close("main")
		h.raw("</body></html>")
		return h.err
	})
}

// Header renders the app name, language selector, greeting, logout control
// and the four primary nav links.
func Header(tr i18n.Translator, view HeaderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw("<header>")
		h.open("div", "class", "container")
		h.open("div", "class", "header-content")
		h.element("h1", tr.T(routepath.AppNameKey))
		h.open("div", "class", "user-info")

		h.open("form", "method", "post", "action", routepath.Language, "class", "lang-form")
		h.element("label", tr.T("languageLabel"), "for", "lang-select")
		h.open("select", "id", "lang-select", "name", "lang")
		for _, option := range view.Languages {
			h.element("option", option.Label, "value", option.Code, when(option.Active, "selected"), boolAttr)
		}
		h.close("select")
		h.open("input", "type", "hidden", "name", "return_to", "value", view.CurrentPath)
		h.element("button", tr.T("languageSwitch"), "type", "submit", "class", "btn btn-secondary btn-small lang-submit")
		h.close("form")

		h.element("span", tr.T("welcomeUser", i18n.R("name", view.UserName)), "class", "greeting")

		h.open("form", "method", "post", "action", routepath.Logout, "class", "logout-form")
		h.element("button", tr.T("logout"), "type", "submit", "id", "logout-btn", "class", "btn btn-secondary")
		h.close("form")

		h.close("div")
		h.close("div")

		h.raw("<nav><ul>")
		for _, link := range navLinks {
			h.raw("<li>")
			h.element("a", tr.T(link.key), "href", link.route.Path(), when(link.route == view.Active, "class"), "active")
			h.raw("</li>")
		}
		h.raw("</ul></nav>")
		h.close("div")
		h.raw("</header>")
		return h.err
	})
}

// Alert renders a one-shot notice banner.
func Alert(notice Notice) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if notice.Message == "" {
			return nil
		}
		kind := notice.Kind
		if kind == "" {
			kind = "info"
		}
		h := newHTMLWriter(w)
		h.element("div", notice.Message, "class", "alert alert-"+kind, "role", "alert")
		return h.err
	})
}
