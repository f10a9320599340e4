package subscriber

import (
	"net/http"

	apperrors "github.com/haqatak/telcoco/internal/services/selfcare/platform/errors"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/flash"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

type handlers struct {
	modulehandler.Base
}

// handleSelect stores the submitted id as-is and opens the detail page. The
// id is resolved there, not here.
func (h handlers) handleSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errorInvalidInput", "failed to parse subscriber form"))
		return
	}
	id := r.PostFormValue(templates.SubscriberIDField)
	if err := h.Dependencies().Sessions.SetSelectedSubscriberID(w, r, id); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "errorUnavailable", err))
		return
	}
	httpx.WriteRedirect(w, r, routepath.SubscriberDetails)
}

func (h handlers) handleDetails(w http.ResponseWriter, r *http.Request) {
	account, ok := h.Authenticate(w, r)
	if !ok {
		return
	}
	selected, ok, err := h.Dependencies().Sessions.SelectedSubscriberID(r)
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "errorUnavailable", err))
		return
	}
	if !ok {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	subscriber, found := account.User.FindSubscriber(selected)
	if !found {
		h.RedirectWithNotice(w, r, routepath.Dashboard, flash.NoticeError("subscriberNotFound"))
		return
	}
	view := templates.NewSubscriberView(subscriber)
	h.WritePage(w, r, account, routepath.RouteSubscriberDetails, templates.SubscriberDetailsPage(h.Translator(r), view))
}
