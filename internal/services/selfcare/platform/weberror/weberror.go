// Package weberror renders shared error responses for selfcare modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	apperrors "github.com/haqatak/telcoco/internal/services/selfcare/platform/errors"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/pagerender"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(tr i18n.Translator, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(tr.T(key)); localized != "" && localized != key {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// PageTitle composes the error page title.
func PageTitle(tr i18n.Translator) string {
	return tr.T("errorTitle") + " - " + tr.T(routepath.AppNameKey)
}

// WriteAppError writes a localized error page. messageKey may be empty to use
// the status default.
func WriteAppError(w http.ResponseWriter, r *http.Request, tr i18n.Translator, statusCode int, messageKey string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	err := pagerender.WritePage(w, r, tr, pagerender.Page{
		Title:      PageTitle(tr),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(tr, statusCode, messageKey),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes an error response for err: an error page for 404
// and 5xx, plain localized text otherwise.
func WriteModuleError(w http.ResponseWriter, r *http.Request, tr i18n.Translator, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, tr, statusCode, apperrors.LocalizationKey(err))
		return
	}
	http.Error(w, PublicMessage(tr, err), statusCode)
}
