package transport

import (
	"log"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
	"golang.org/x/oauth2"
)

type RoundTripper struct {
	store     store.Store
	navigator navigation.Navigator
	transport http.RoundTripper
	loginPath string
	origin    *url.URL
	logf      func(format string, args ...any)
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     store.NewMemoryStore(),
		navigator: navigation.NavigatorFunc(func(string) {}),
		loginPath: navigation.LoginPath,
		logf:      log.Printf,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

// Client returns an http.Client that sends every request through the pipeline.
func (r *RoundTripper) Client() *http.Client {
	return &http.Client{Transport: r}
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !sameOrigin(r.origin, req.URL) {
		return r.transport.RoundTrip(req)
	}
	outgoing := req
	if IsAPIPath(req.URL.Path) {
		// never mutate the caller's request
		outgoing = req.Clone(req.Context())
		normalizeURL(outgoing.URL)
		if token := store.Token(r.store); token != "" && outgoing.Header.Get("Authorization") == "" {
			(&oauth2.Token{AccessToken: token}).SetAuthHeader(outgoing)
		}
	}
	requestID := uuid.NewString()
	resp, err := r.transport.RoundTrip(outgoing)
	if err != nil {
		return resp, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		r.unauthorized(requestID, outgoing)
	}
	return resp, nil
}

// unauthorized evicts the credential and redirects, both are idempotent so
// concurrent 401s need no coordination.
func (r *RoundTripper) unauthorized(requestID string, req *http.Request) {
	r.logf("[crm/transport] %s %s %s: 401 received, redirecting to %s", requestID, req.Method, req.URL.Path, r.loginPath)
	if err := r.store.Delete(store.AccessTokenKey); err != nil {
		r.logf("[crm/transport] %s: failed to evict credential: %v", requestID, err)
	}
	r.navigator.Navigate(r.loginPath)
}
