// Package billing renders the invoice history.
package billing

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// Module provides the billing page.
type Module struct{}

// New returns a billing module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "billing" }

// Mount wires the billing page.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	base := modulehandler.NewBase(deps)
	return module.Mount{Pages: []module.Page{{
		Route: routepath.RouteBilling,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := base.Authenticate(w, r)
			if !ok {
				return
			}
			rows := templates.NewInvoiceRows(account.User.BillingHistory)
			base.WritePage(w, r, account, routepath.RouteBilling, templates.BillingPage(base.Translator(r), rows))
		}),
	}}}, nil
}
