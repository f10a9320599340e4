package login

import (
	"net/http"
	"strings"

	apperrors "github.com/haqatak/telcoco/internal/services/selfcare/platform/errors"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, templates.LoginView{})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errorInvalidInput", "failed to parse login form"))
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	if username == "" {
		h.renderLogin(w, r, http.StatusBadRequest, templates.LoginView{ErrorKey: "usernameRequired"})
		return
	}
	if err := h.Dependencies().Sessions.SetLoggedInUser(w, r, username); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "errorUnavailable", err))
		return
	}
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, statusCode int, view templates.LoginView) {
	tr := h.Translator(r)
	title := routepath.Title(tr, routepath.Identifier(r.URL.Path))
	h.WritePublicPage(w, r, statusCode, title, templates.LoginPage(tr, view))
}
