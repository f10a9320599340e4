// Package module defines the feature contract used by selfcare composition.
package module

import (
	"errors"
	"log"
	"net/http"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/fixture"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/langcookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/observability"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/session"
)

// Dependencies carries the shared services every module may use.
type Dependencies struct {
	Fixtures     fixture.Source
	Sessions     *session.Manager
	Translations i18n.Table
	Logger       *log.Logger
	SchemePolicy requestmeta.SchemePolicy
	Metrics      *observability.Metrics
}

// Validate reports the first missing dependency.
func (d Dependencies) Validate() error {
	switch {
	case d.Fixtures == nil:
		return errors.New("fixture source is required")
	case d.Sessions == nil:
		return errors.New("session manager is required")
	case len(d.Translations) == 0:
		return errors.New("translation table is required")
	}
	return nil
}

// Translator binds the translation table to the request's stored language.
func (d Dependencies) Translator(r *http.Request) i18n.Translator {
	return i18n.NewTranslator(d.Translations, langcookie.Resolve(r))
}

// Logf writes to the configured logger, or the standard logger when unset.
func (d Dependencies) Logf(format string, args ...any) {
	if d.Logger == nil {
		log.Printf(format, args...)
		return
	}
	d.Logger.Printf(format, args...)
}

// Page binds a route of the page table to the handler that renders it.
type Page struct {
	Route   routepath.Route
	Handler http.Handler
}

// Action binds a form endpoint, such as "POST /logout", to its handler.
type Action struct {
	Pattern string
	Handler http.Handler
}

// Mount describes what a module contributes to the root handler.
type Mount struct {
	Pages   []Page
	Actions []Action
}

// Module declares the minimum contract required by selfcare composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
