// Package modulehandler provides a composable base for selfcare page handlers.
//
// Every page except login shares one pipeline: read the signed-in username,
// load the fixture, resolve the user, then render inside the app chrome. Modules
// embed Base rather than repeating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/fixture"
	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	apperrors "github.com/haqatak/telcoco/internal/services/selfcare/platform/errors"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/flash"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/langcookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/pagerender"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/weberror"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// Account is the resolved request principal with the document it came from.
type Account struct {
	Document fixture.Document
	User     fixture.User
}

// Base carries the shared dependencies used by page handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Dependencies exposes the shared module dependencies.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// Translator returns the request translator.
func (b Base) Translator(r *http.Request) i18n.Translator {
	return b.deps.Translator(r)
}

// Authenticate resolves the signed-in user. On false the response has already
// been written: a redirect to login when no one is signed in or the user is
// missing from the fixture, or an error page when the fixture cannot load.
func (b Base) Authenticate(w http.ResponseWriter, r *http.Request) (Account, bool) {
	username, ok, err := b.deps.Sessions.LoggedInUser(r)
	if err != nil {
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "errorUnavailable", err))
		return Account{}, false
	}
	if !ok {
		httpx.WriteRedirect(w, r, routepath.Login)
		return Account{}, false
	}

	doc, err := b.deps.Fixtures.Load(httpx.RequestContext(r))
	b.deps.Metrics.ObserveFixtureLoad(err)
	if err != nil {
		b.deps.Logf("fixture load failed source=%s request_id=%s err=%v", fixture.Describe(b.deps.Fixtures), httpx.RequestIDFrom(r), err)
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "dataLoadError", err))
		return Account{}, false
	}

	user, ok := doc.FindUser(username)
	if !ok {
		b.deps.Logf("user not found in fixture username=%q request_id=%s", username, httpx.RequestIDFrom(r))
		b.ForceLogout(w, r, flash.NoticeError("genericError"))
		return Account{}, false
	}
	return Account{Document: doc, User: user}, true
}

// ForceLogout clears the session and the language preference, then lands on
// the login page with notice.
func (b Base) ForceLogout(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	b.Logout(w, r)
	b.Flash(w, r, notice)
	httpx.WriteRedirect(w, r, routepath.Login)
}

// Logout drops every session key and the stored language.
func (b Base) Logout(w http.ResponseWriter, r *http.Request) {
	if err := b.deps.Sessions.Clear(w, r); err != nil {
		b.deps.Logf("session clear failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
	}
	langcookie.Clear(w)
}

// Flash stores a one-shot notice for the next rendered page.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	flash.Write(w, r, notice, b.deps.SchemePolicy)
}

// RedirectWithNotice stores notice and redirects to location.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flash.Notice) {
	b.Flash(w, r, notice)
	httpx.WriteRedirect(w, r, location)
}

// Header builds the chrome for an authenticated page.
func (b Base) Header(r *http.Request, tr i18n.Translator, account Account, active routepath.Route) *templates.HeaderView {
	current := routepath.Dashboard
	if r != nil && r.URL != nil {
		current = r.URL.Path
	}
	return &templates.HeaderView{
		UserName:    account.User.Name,
		Active:      active,
		CurrentPath: current,
		Languages:   langcookie.Options(tr),
	}
}

// WritePage renders fragment inside the authenticated chrome, titled after
// the requested page identifier.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, account Account, active routepath.Route, fragment templ.Component) {
	tr := b.Translator(r)
	notice, ok := flash.ReadAndClear(w, r, b.deps.SchemePolicy)
	page := pagerender.Page{
		Title:    routepath.Title(tr, requestIdentifier(r, active)),
		Header:   b.Header(r, tr, account, active),
		Notice:   pagerender.NoticeFromFlash(tr, notice, ok),
		Fragment: fragment,
	}
	if err := pagerender.WritePage(w, r, tr, page); err != nil {
		b.deps.Logf("render page failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
	}
}

// WritePublicPage renders fragment without the authenticated chrome.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, statusCode int, title string, fragment templ.Component) {
	tr := b.Translator(r)
	notice, ok := flash.ReadAndClear(w, r, b.deps.SchemePolicy)
	page := pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Notice:     pagerender.NoticeFromFlash(tr, notice, ok),
		Fragment:   fragment,
	}
	if err := pagerender.WritePage(w, r, tr, page); err != nil {
		b.deps.Logf("render page failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, b.Translator(r), err)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, b.Translator(r), http.StatusNotFound, "")
}

// requestIdentifier prefers the requested identifier so the title follows the
// URL, falling back to the route's own.
func requestIdentifier(r *http.Request, route routepath.Route) string {
	if r != nil && r.URL != nil {
		return routepath.Identifier(r.URL.Path)
	}
	return route.Identifier()
}
