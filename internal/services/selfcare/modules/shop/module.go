// Package shop renders the product catalog. Adding a product to a plan is not
// implemented.
package shop

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// Module provides the shop page.
type Module struct{}

// New returns a shop module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shop" }

// Mount wires the shop page.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	base := modulehandler.NewBase(deps)
	return module.Mount{Pages: []module.Page{{
		Route: routepath.RouteShop,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := base.Authenticate(w, r)
			if !ok {
				return
			}
			cards := templates.NewProductCards(account.Document.Products)
			base.WritePage(w, r, account, routepath.RouteShop, templates.ShopPage(base.Translator(r), cards))
		}),
	}}}, nil
}
