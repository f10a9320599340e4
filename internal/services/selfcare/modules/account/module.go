// Package account serves the logout and language-switch actions shared by
// every page.
package account

import (
	"net/http"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/modulehandler"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// Module provides the public account actions.
type Module struct{}

// New returns an account module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires logout and language switching.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if err := deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	h := handlers{Base: modulehandler.NewBase(deps)}
	return module.Mount{
		Actions: []module.Action{
			{Pattern: http.MethodPost + " " + routepath.Logout, Handler: http.HandlerFunc(h.handleLogout)},
			{Pattern: http.MethodGet + " " + routepath.Logout, Handler: httpx.MethodNotAllowed(http.MethodPost)},
			{Pattern: http.MethodPost + " " + routepath.Language, Handler: http.HandlerFunc(h.handleLanguage)},
			{Pattern: http.MethodGet + " " + routepath.Language, Handler: httpx.MethodNotAllowed(http.MethodPost)},
		},
	}, nil
}
