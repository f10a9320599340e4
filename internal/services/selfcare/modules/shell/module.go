// Package shell serves page identifiers outside the route table: the chrome
// renders for a signed-in user and the main area stays empty.
package shell

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// Module provides the unknown-page route.
type Module struct{}

// New returns a shell module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shell" }

// Mount wires the unknown-page handler.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	base := modulehandler.NewBase(deps)
	return module.Mount{Pages: []module.Page{{
		Route: routepath.RouteUnknown,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := base.Authenticate(w, r)
			if !ok {
				return
			}
			base.WritePage(w, r, account, routepath.RouteUnknown, nil)
		}),
	}}}, nil
}
