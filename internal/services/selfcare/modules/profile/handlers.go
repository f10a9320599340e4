package profile

import (
	"net/http"

	"github.com/haqatak/telcoco/internal/services/selfcare/platform/flash"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	account, ok := h.Authenticate(w, r)
	if !ok {
		return
	}
	view := templates.NewProfileView(account.User)
	h.WritePage(w, r, account, routepath.RouteProfile, templates.ProfilePage(h.Translator(r), view))
}

// handleProfilePost never reads the submitted fields.
func (h handlers) handleProfilePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.Authenticate(w, r); !ok {
		return
	}
	h.RedirectWithNotice(w, r, routepath.Profile, flash.NoticeSuccess("profileUpdated"))
}
