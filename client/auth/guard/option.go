package guard

import (
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
)

type Option func(*Guard)

// WithRoutes replaces the route table.
func WithRoutes(routes ...Route) Option {
	return func(g *Guard) {
		g.routes = routes
	}
}

// WithStore sets the credential store
func WithStore(store store.Store) Option {
	return func(g *Guard) {
		g.store = store
	}
}

// WithNavigator sets the navigator used for redirects
func WithNavigator(navigator navigation.Navigator) Option {
	return func(g *Guard) {
		g.navigator = navigator
	}
}

// WithLoginPath overrides the login destination
func WithLoginPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithLogger sets the log function, nil silences logging.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(g *Guard) {
		if logf == nil {
			logf = func(string, ...any) {}
		}
		g.logf = logf
	}
}
