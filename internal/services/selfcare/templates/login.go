package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// LoginView is the login form state.
type LoginView struct {
	Username string
	// ErrorKey names a validation message to show above the form.
	ErrorKey string
}

// LoginPage renders the sign-in form. The password is collected but never
// checked.
func LoginPage(tr i18n.Translator, view LoginView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("div", "class", "login-container")
		h.open("div", "class", "card login-card")
		h.element("h1", tr.T(routepath.AppNameKey))
		h.element("h2", tr.T("loginHeading"))
		if view.ErrorKey != "" {
			h.component(ctx, Alert(Notice{Kind: "error", Message: tr.T(view.ErrorKey)}))
		}
		h.open("form", "id", "login-form", "method", "post", "action", routepath.Login)
		h.open("div", "class", "form-group")
		h.element("label", tr.T("usernameLabel"), "for", "username")
		h.open("input", "type", "text", "id", "username", "name", "username", "value", view.Username, "autocomplete", "username", "required", boolAttr)
		h.close("div")
		h.open("div", "class", "form-group")
		h.element("label", tr.T("passwordLabel"), "for", "password")
		h.open("input", "type", "password", "id", "password", "name", "password", "autocomplete", "current-password")
		h.close("div")
		h.element("button", tr.T("loginButton"), "type", "submit", "class", "btn")
		h.close("form")
		h.close("div")
		h.close("div")
		return h.err
	})
}
