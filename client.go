package crm

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/crm/client/api"
	"github.com/viant/crm/client/auth"
	"github.com/viant/crm/client/auth/guard"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
	"github.com/viant/crm/client/auth/transport"
	"github.com/viant/crm/ui/preferences"
)

// Client is the per-process session layer.
type Client struct {
	Options     *ClientOptions
	Store       store.Store
	Location    *navigation.Location
	Transport   *transport.RoundTripper
	HTTPClient  *http.Client
	API         *api.Client
	Session     *auth.Service
	Guard       *guard.Guard
	Preferences *preferences.Preferences
}

// NewClient builds the store, pipeline, guard and API client from options.
func NewClient(ctx context.Context, options *ClientOptions) (*Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	aStore, err := options.store(ctx)
	if err != nil {
		return nil, err
	}
	location := navigation.NewLocation("")
	rt, err := transport.New(
		transport.WithStore(aStore),
		transport.WithNavigator(location),
		transport.WithTransport(options.Transport),
		transport.WithLoginPath(options.LoginPath),
		transport.WithOrigin(options.BaseURL),
		transport.WithLogger(options.logger()),
	)
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Transport: rt, Timeout: time.Duration(options.TimeoutMs) * time.Millisecond}
	apiClient := api.New(httpClient, options.BaseURL)
	return &Client{
		Options:    options,
		Store:      aStore,
		Location:   location,
		Transport:  rt,
		HTTPClient: httpClient,
		API:        apiClient,
		Session: auth.New(apiClient, aStore, location,
			auth.WithLoginPath(options.LoginPath),
			auth.WithLogger(options.logger())),
		Guard: guard.New(
			guard.WithStore(aStore),
			guard.WithNavigator(location),
			guard.WithLoginPath(options.LoginPath),
			guard.WithLogger(options.logger())),
		Preferences: preferences.New(aStore),
	}, nil
}

// Start is the startup step: it enters path and runs the session guard.
// On RedirectToLogin the location already points at the login page.
func (c *Client) Start(path string) guard.Decision {
	c.Location.Replace(path)
	return c.Guard.Run(path)
}

// RedirectedToLogin reports whether the client was sent to the login page.
func (c *Client) RedirectedToLogin() bool {
	return c.Location.Redirected(c.Options.LoginPath)
}

func (o *ClientOptions) store(ctx context.Context) (store.Store, error) {
	if o.Store != nil {
		return o.Store, nil
	}
	if !strings.Contains(o.StoreURL, "://") {
		if err := os.MkdirAll(filepath.Dir(o.StoreURL), 0o700); err != nil {
			return nil, err
		}
	}
	return store.NewFileStore(ctx, o.StoreURL, nil)
}

func (o *ClientOptions) logger() func(format string, args ...any) {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Printf
}
