package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

// ErrorStateID marks the rendered error state.
const ErrorStateID = "app-error-state"

// ErrorState renders a localized error block. An empty messageKey falls back
// to a status-specific message.
func ErrorState(tr i18n.Translator, statusCode int, messageKey string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if messageKey == "" {
			messageKey = errorMessageKey(statusCode)
		}
		h := newHTMLWriter(w)
		h.open("section", "id", ErrorStateID, "class", "card error-state", "data-status", http.StatusText(statusCode))
		h.element("h2", tr.T("errorTitle"))
		h.element("p", tr.T(messageKey))
		h.close("section")
		return h.err
	})
}

func errorMessageKey(statusCode int) string {
	switch {
	case statusCode == http.StatusNotFound:
		return "errorNotFound"
	case statusCode == http.StatusForbidden:
		return "errorForbidden"
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return "errorInvalidInput"
	default:
		return "errorUnavailable"
	}
}
