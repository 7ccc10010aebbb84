package crm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL overrides ClientOptions.BaseURL.
	EnvBaseURL       = "CRM_BASE_URL"
	defaultBaseURL   = "http://localhost:8000"
	defaultTimeoutMs = 30000
)

// ClientOptions defines options for configuring a CRM client.
type ClientOptions struct {
	BaseURL   string `yaml:"baseURL,omitempty" json:"baseURL,omitempty" short:"u" long:"url" env:"CRM_BASE_URL" description:"crm server url"`
	StoreURL  string `yaml:"storeURL,omitempty" json:"storeURL,omitempty" short:"s" long:"store" description:"session store location (path or afs URL)"`
	LoginPath string `yaml:"loginPath,omitempty" json:"loginPath,omitempty" long:"login-path" description:"login page path"`
	TimeoutMs int    `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty" long:"timeout" description:"request timeout in ms"`

	// Store, if set, replaces the store addressed by StoreURL.
	Store store.Store `yaml:"-" json:"-"`
	// Transport, if set, is wrapped by the request pipeline instead of http.DefaultTransport.
	Transport http.RoundTripper `yaml:"-" json:"-"`
	// Logger, if set, receives every component log line; otherwise log.Printf is used.
	Logger func(format string, args ...any) `yaml:"-" json:"-"`
}

// Init applies defaults.
func (o *ClientOptions) Init() {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	if o.LoginPath == "" {
		o.LoginPath = navigation.LoginPath
	}
	if o.TimeoutMs <= 0 {
		o.TimeoutMs = defaultTimeoutMs
	}
	if o.StoreURL == "" {
		if home, err := os.UserHomeDir(); err == nil {
			o.StoreURL = filepath.Join(home, ".crm", "session.json")
		} else {
			o.StoreURL = filepath.Join(os.TempDir(), "crm-session.json")
		}
	}
}

// LoadOptions reads YAML options from URL (any afs location). The
// CRM_BASE_URL environment variable wins over the file.
func LoadOptions(ctx context.Context, URL string) (*ClientOptions, error) {
	ret := &ClientOptions{}
	if URL != "" {
		data, err := afs.New().DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode options %v: %w", URL, err)
		}
	}
	if env := os.Getenv(EnvBaseURL); env != "" {
		ret.BaseURL = env
	}
	return ret, nil
}
