package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/crm/client/api"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
)

var (
	// ErrNoCredential is returned when an operation needs a stored credential.
	ErrNoCredential = errors.New("no credential")
	// ErrInvalidCredentials is returned when login is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOpaqueToken is returned when the credential is not a JWT.
	ErrOpaqueToken = errors.New("credential is not a JWT")
)

// User is the authenticated account profile.
type User struct {
	ID           int            `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	NomeCompleto string         `json:"nome_completo"`
	Role         string         `json:"role"`
	Ativo        bool           `json:"ativo"`
	Preferencias map[string]any `json:"preferencias,omitempty"`
}

// NewUser is a registration request.
type NewUser struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	NomeCompleto string `json:"nome_completo"`
	Senha        string `json:"senha"`
}

// TokenResponse is the login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Usuario     *User  `json:"usuario"`
}

// Claims are the unverified claims of a JWT credential.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry a past expiry.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type credentials struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

type Service struct {
	api       *api.Client
	store     store.Store
	navigator navigation.Navigator
	loginPath string
	logf      func(format string, args ...any)
}

// New creates a session service. client should be the api client built on
// the request pipeline sharing s.
func New(client *api.Client, s store.Store, navigator navigation.Navigator, options ...Option) *Service {
	ret := &Service{
		api:       client,
		store:     s,
		navigator: navigator,
		loginPath: navigation.LoginPath,
		logf:      log.Printf,
	}
	if ret.navigator == nil {
		ret.navigator = navigation.NavigatorFunc(func(string) {})
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Login authenticates and stores the issued credential.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	ret := &TokenResponse{}
	err := s.api.Post(ctx, "/usuarios/login", &credentials{Username: username, Senha: password}, ret)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Detail)
		}
		return nil, err
	}
	if ret.AccessToken == "" {
		return nil, fmt.Errorf("login response without access_token")
	}
	if err = s.store.Set(store.AccessTokenKey, ret.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}
	s.logf("[crm/auth] logged in as %s", username)
	return ret, nil
}

// Register creates an account, it does not log in.
func (s *Service) Register(ctx context.Context, user *NewUser) (*User, error) {
	ret := &User{}
	if err := s.api.Post(ctx, "/usuarios/registrar", user, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Me returns the current user. Any failure, including a transport error,
// evicts the credential and redirects to the login page.
func (s *Service) Me(ctx context.Context) (*User, error) {
	if !store.HasToken(s.store) {
		s.navigator.Navigate(s.loginPath)
		return nil, ErrNoCredential
	}
	ret := &User{}
	if err := s.api.Get(ctx, "/usuarios/me", ret); err != nil {
		s.logf("[crm/auth] session check failed: %v", err)
		s.evict()
		return nil, err
	}
	return ret, nil
}

// Logout evicts the credential and redirects to the login page.
func (s *Service) Logout() error {
	err := s.store.Delete(store.AccessTokenKey)
	s.navigator.Navigate(s.loginPath)
	return err
}

// Claims parses the stored credential without verifying its signature.
func (s *Service) Claims() (*Claims, error) {
	token := store.Token(s.store)
	if token == "" {
		return nil, ErrNoCredential
	}
	var claims jwt.MapClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}
	ret := &Claims{}
	ret.Subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ret.ExpiresAt = exp.Time
	}
	return ret, nil
}

func (s *Service) evict() {
	if err := s.store.Delete(store.AccessTokenKey); err != nil {
		s.logf("[crm/auth] failed to evict credential: %v", err)
	}
	s.navigator.Navigate(s.loginPath)
}
