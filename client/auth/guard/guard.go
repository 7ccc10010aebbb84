// Package guard decides, once per startup, whether the current route may run
// without a credential. Only credential presence is checked locally, validity
// is left to the server on the first API call.
package guard

import (
	"log"
	"strings"

	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
)

// Decision is the outcome of a guard check.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirectToLogin"
	}
	return "unknown"
}

// Route marks every path starting with Prefix as public or protected.
type Route struct {
	Prefix string
	Public bool
}

// DefaultRoutes lists the routes reachable without a session.
var DefaultRoutes = []Route{
	{Prefix: "/login", Public: true},
	{Prefix: "/registrar", Public: true},
}

type Guard struct {
	routes    []Route
	store     store.Store
	navigator navigation.Navigator
	loginPath string
	logf      func(format string, args ...any)
}

// New creates a guard. Without options it uses DefaultRoutes, an empty memory
// store and a navigator that does nothing.
func New(options ...Option) *Guard {
	ret := &Guard{
		routes:    DefaultRoutes,
		store:     store.NewMemoryStore(),
		navigator: navigation.NavigatorFunc(func(string) {}),
		loginPath: navigation.LoginPath,
		logf:      log.Printf,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// IsPublic reports whether path matches a public route. The longest matching
// prefix decides, unmatched paths are protected.
func (g *Guard) IsPublic(path string) bool {
	matched := -1
	public := false
	for _, route := range g.routes {
		if !strings.HasPrefix(path, route.Prefix) {
			continue
		}
		if len(route.Prefix) > matched {
			matched = len(route.Prefix)
			public = route.Public
		}
	}
	return public
}

// Check is the pure policy: public routes are always allowed, any other
// route requires hasToken.
func (g *Guard) Check(path string, hasToken func() bool) Decision {
	if g.IsPublic(path) {
		return Allow
	}
	if hasToken != nil && hasToken() {
		return Allow
	}
	return RedirectToLogin
}

// Run checks path against the configured store and navigates to the login
// page before returning RedirectToLogin.
func (g *Guard) Run(path string) Decision {
	if g.IsPublic(path) {
		g.logf("[crm/guard] public route: %s", path)
		return Allow
	}
	decision := g.Check(path, func() bool { return store.HasToken(g.store) })
	if decision == RedirectToLogin {
		g.logf("[crm/guard] no credential for %s, redirecting to %s", path, g.loginPath)
		g.navigator.Navigate(g.loginPath)
		return decision
	}
	g.logf("[crm/guard] credential found")
	return decision
}
