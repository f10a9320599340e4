// Package profile renders the profile form. Submitting it shows a success
// notice; nothing is persisted.
package profile

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// Module provides profile routes.
type Module struct{}

// New returns a profile module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires the profile page and its form action.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	h := handlers{Base: modulehandler.NewBase(deps)}
	return module.Mount{
		Pages: []module.Page{
			{Route: routepath.RouteProfile, Handler: http.HandlerFunc(h.handleProfileGet)},
		},
		Actions: []module.Action{
			{Pattern: http.MethodPost + " " + routepath.Profile, Handler: http.HandlerFunc(h.handleProfilePost)},
		},
	}, nil
}
