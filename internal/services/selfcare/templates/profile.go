package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// ProfilePage renders the profile form. Name and username are read-only; the
// submitted values are never read back.
func ProfilePage(tr i18n.Translator, view ProfileView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("h2", tr.T("profileHeading"))
		h.open("div", "class", "card")
		h.open("form", "id", "profile-form", "method", "post", "action", routepath.Profile)

		h.open("div", "class", "form-group")
		h.element("label", tr.T("fullName"), "for", "profile-name")
		h.open("input", "type", "text", "id", "profile-name", "value", view.Name, "readonly", boolAttr)
		h.close("div")

		h.open("div", "class", "form-group")
		h.element("label", tr.T("username"), "for", "profile-username")
		h.open("input", "type", "text", "id", "profile-username", "value", view.Username, "readonly", boolAttr)
		h.close("div")

		h.open("div", "class", "form-group")
		h.element("label", tr.T("address"), "for", "profile-address")
		h.element("textarea", view.Address, "id", "profile-address", "name", "address", "rows", "3")
		h.close("div")

		h.open("fieldset", "class", "form-group")
		h.element("legend", tr.T("contactPrefs"))
		h.open("div", "class", "checkbox-group")
		h.open("input", "type", "checkbox", "id", "pref-email", "name", "pref_email", when(view.PrefEmail, "checked"), boolAttr)
		h.element("label", tr.T("prefEmail"), "for", "pref-email")
		h.close("div")
		h.open("div", "class", "checkbox-group")
		h.open("input", "type", "checkbox", "id", "pref-sms", "name", "pref_sms", when(view.PrefSMS, "checked"), boolAttr)
		h.element("label", tr.T("prefSms"), "for", "pref-sms")
		h.close("div")
		h.close("fieldset")

		h.element("button", tr.T("updateProfile"), "type", "submit", "class", "btn")
		h.close("form")
		h.close("div")
		return h.err
	})
}
