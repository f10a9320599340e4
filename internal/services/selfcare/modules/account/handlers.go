package account

import (
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/haqatak/telcoco/internal/services/selfcare/platform/errors"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/langcookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

type handlers struct {
	modulehandler.Base
}

// handleLogout clears the session and the language preference.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.Logout(w, r)
	httpx.WriteRedirect(w, r, routepath.Login)
}

// handleLanguage stores the chosen language and reloads the page it was
// submitted from.
func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errorInvalidInput", "failed to parse language form"))
		return
	}
	if _, ok := langcookie.Set(w, r.PostFormValue("lang")); !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errorInvalidInput", "unsupported language"))
		return
	}
	httpx.WriteRedirect(w, r, returnPath(r.PostFormValue("return_to")))
}

// returnPath accepts only same-site absolute paths.
func returnPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return routepath.Root
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return routepath.Root
	}
	return parsed.EscapedPath()
}
