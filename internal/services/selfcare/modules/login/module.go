// Package login serves the sign-in page. There is no credential check: any
// non-empty username is stored and resolved against the fixture on the next
// page.
package login

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// Module provides the public login routes.
type Module struct{}

// New returns a login module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "login" }

// Mount wires the login page and form action.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	h := handlers{Base: modulehandler.NewBase(deps)}
	return module.Mount{
		Pages: []module.Page{
			{Route: routepath.RouteLogin, Handler: http.HandlerFunc(h.handleLoginGet)},
		},
		Actions: []module.Action{
			{Pattern: http.MethodPost + " " + routepath.Login, Handler: http.HandlerFunc(h.handleLoginPost)},
		},
	}, nil
}
