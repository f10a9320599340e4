// Package dashboard renders the subscriber overview.
package dashboard

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// Module provides the dashboard page.
type Module struct{}

// New returns a dashboard module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires the dashboard page.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	base := modulehandler.NewBase(deps)
	return module.Mount{Pages: []module.Page{{
		Route: routepath.RouteDashboard,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := base.Authenticate(w, r)
			if !ok {
				return
			}
			subscribers := templates.NewSubscriberViews(account.User)
			base.WritePage(w, r, account, routepath.RouteDashboard, templates.DashboardPage(base.Translator(r), subscribers))
		}),
	}}}, nil
}
