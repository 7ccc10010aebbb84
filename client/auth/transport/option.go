package transport

import (
	"net/http"
	"net/url"

	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithNavigator sets the navigator used on 401
func WithNavigator(navigator navigation.Navigator) Option {
	return func(t *RoundTripper) {
		t.navigator = navigator
	}
}

// WithTransport sets the wrapped transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		if transport != nil {
			t.transport = transport
		}
	}
}

// WithLoginPath overrides the login destination
func WithLoginPath(path string) Option {
	return func(t *RoundTripper) {
		if path != "" {
			t.loginPath = path
		}
	}
}

// WithOrigin restricts the pipeline to requests addressed to baseURL's
// scheme and host. Malformed or empty URLs leave the pipeline unrestricted.
func WithOrigin(baseURL string) Option {
	return func(t *RoundTripper) {
		if baseURL == "" {
			return
		}
		if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
			t.origin = &url.URL{Scheme: u.Scheme, Host: u.Host}
		}
	}
}

// WithLogger sets the log function, nil silences logging.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(t *RoundTripper) {
		if logf == nil {
			logf = func(string, ...any) {}
		}
		t.logf = logf
	}
}
