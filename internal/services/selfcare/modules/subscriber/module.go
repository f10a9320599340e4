// Package subscriber handles subscriber selection and the detail page.
package subscriber

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// Module provides subscriber routes.
type Module struct{}

// New returns a subscriber module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "subscriber" }

// Mount wires the detail page and the selection action.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	h := handlers{Base: modulehandler.NewBase(deps)}
	return module.Mount{
		Pages: []module.Page{
			{Route: routepath.RouteSubscriberDetails, Handler: http.HandlerFunc(h.handleDetails)},
		},
		Actions: []module.Action{
			{Pattern: http.MethodPost + " " + routepath.SubscriberSelect, Handler: http.HandlerFunc(h.handleSelect)},
			{Pattern: http.MethodGet + " " + routepath.SubscriberSelect, Handler: httpx.MethodNotAllowed(http.MethodPost)},
		},
	}, nil
}
