// Package app composes selfcare modules into the root page handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/haqatak/telcoco/internal/services/selfcare/module"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/sessioncookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies module.Dependencies
	// Authenticated reports whether the request has a signed-in user.
	Authenticated    func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Composer wires the page table, form actions and route-group auth behavior.
type Composer struct{}

type composition struct {
	mux        *http.ServeMux
	pages      map[routepath.Route]http.Handler
	pageOwners map[routepath.Route]string
	actions    map[string]string
}

// Compose builds the root handler. It fails when two modules claim the same
// route or action, when a module is mounted in the wrong group, or when any
// route of the page table, including the unknown-page route, has no handler.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	if input.Authenticated == nil {
		input.Authenticated = func(*http.Request) bool { return false }
	}
	c := &composition{
		mux:        http.NewServeMux(),
		pages:      make(map[routepath.Route]http.Handler),
		pageOwners: make(map[routepath.Route]string),
		actions:    make(map[string]string),
	}
	sameOrigin := requireCookieSessionSameOrigin(input.Dependencies.SchemePolicy)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := c.mount(feature, input.Dependencies, false, sameOrigin); err != nil {
			return nil, err
		}
	}
	protected := wrapProtected(input.Authenticated, sameOrigin)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		if err := c.mount(feature, input.Dependencies, true, protected); err != nil {
			return nil, err
		}
	}

	for _, route := range RequiredRoutes() {
		if _, ok := c.pages[route]; !ok {
			return nil, fmt.Errorf("route %q has no page handler", route)
		}
	}
	c.mux.Handle(http.MethodGet+" "+routepath.Root, dispatchPages(c.pages))
	return c.mux, nil
}

// RequiredRoutes lists every route the page table must serve.
func RequiredRoutes() []routepath.Route {
	return append(routepath.All(), routepath.RouteUnknown)
}

func (c *composition) mount(feature module.Module, deps module.Dependencies, protected bool, wrap httpx.Middleware) error {
	mount, err := feature.Mount(deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if len(mount.Pages) == 0 && len(mount.Actions) == 0 {
		return fmt.Errorf("mount module %q: no pages or actions", feature.ID())
	}
	for _, page := range mount.Pages {
		if page.Handler == nil {
			return fmt.Errorf("mount module %q: route %q handler is required", feature.ID(), page.Route)
		}
		if page.Route.RequiresSession() != protected {
			return fmt.Errorf("module %q mounts route %q in the wrong group", feature.ID(), page.Route)
		}
		if previous, ok := c.pageOwners[page.Route]; ok {
			return fmt.Errorf("module %q duplicates route %q owned by module %q", feature.ID(), page.Route, previous)
		}
		c.pageOwners[page.Route] = feature.ID()
		c.pages[page.Route] = wrap(page.Handler)
	}
	for _, action := range mount.Actions {
		pattern := strings.TrimSpace(action.Pattern)
		if pattern == "" || action.Handler == nil {
			return fmt.Errorf("mount module %q: action pattern and handler are required", feature.ID())
		}
		if previous, ok := c.actions[pattern]; ok {
			return fmt.Errorf("module %q duplicates action %q owned by module %q", feature.ID(), pattern, previous)
		}
		c.actions[pattern] = feature.ID()
		c.mux.Handle(pattern, wrap(action.Handler))
	}
	return nil
}

// dispatchPages routes GET requests by the final path segment, so "/" and
// any path ending in "/" land on the login page.
func dispatchPages(pages map[routepath.Route]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routepath.Lookup(routepath.Identifier(r.URL.Path))
		handler, ok := pages[route]
		if !ok {
			handler = pages[routepath.RouteUnknown]
		}
		handler.ServeHTTP(w, r)
	})
}

func requireAuth(authenticated func(*http.Request) bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				http.Redirect(w, r, routepath.Login, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapProtected(authenticated func(*http.Request) bool, sameOrigin httpx.Middleware) httpx.Middleware {
	authWrap := requireAuth(authenticated)
	return func(next http.Handler) http.Handler {
		return authWrap(sameOrigin(next))
	}
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
