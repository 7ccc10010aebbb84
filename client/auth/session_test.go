package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/crm/client/api"
	"github.com/viant/crm/client/auth/mock"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
	"github.com/viant/crm/client/auth/transport"
)

type fixture struct {
	server   *mock.Server
	store    store.Store
	location *navigation.Location
	service  *Service
}

func newFixture(t *testing.T, httpTransport http.RoundTripper) *fixture {
	server, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	t.Cleanup(server.Close)
	s := store.NewMemoryStore()
	loc := navigation.NewLocation("/clientes")
	rt, err := transport.New(
		transport.WithStore(s),
		transport.WithNavigator(loc),
		transport.WithOrigin(server.URL),
		transport.WithTransport(httpTransport),
		transport.WithLogger(nil),
	)
	require.NoError(t, err)
	client := api.New(rt.Client(), server.URL)
	return &fixture{server: server, store: s, location: loc, service: New(client, s, loc, WithLogger(nil))}
}

func TestService_Login(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	resp, err := f.service.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, "admin", resp.Usuario.Username)
	assert.Equal(t, resp.AccessToken, store.Token(f.store))

	user, err := f.service.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "Bearer "+resp.AccessToken, f.server.Service.LastAuthorization())
	assert.Contains(t, f.server.Service.Paths(), "/api/v1/usuarios/me")

	claims, err := f.service.Claims()
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(time.Now().Add(2*time.Hour)))
}

func TestService_LoginRejected(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.service.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "Usuário ou senha inválidos")
	assert.False(t, store.HasToken(f.store))
}

func TestService_Me(t *testing.T) {
	t.Run("no credential", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.service.Me(context.Background())
		assert.Same(t, ErrNoCredential, err)
		assert.Equal(t, navigation.LoginPath, f.location.Path())
		assert.Empty(t, f.server.Service.Paths(), "no network call without a credential")
	})
	t.Run("revoked credential", func(t *testing.T) {
		f := newFixture(t, nil)
		token, err := f.server.Service.Token("admin")
		require.NoError(t, err)
		f.server.Service.Revoke(token)
		require.NoError(t, f.store.Set(store.AccessTokenKey, token))

		_, err = f.service.Me(context.Background())
		assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
		assert.False(t, store.HasToken(f.store))
		assert.Equal(t, navigation.LoginPath, f.location.Path())
	})
	t.Run("transport failure", func(t *testing.T) {
		failure := errors.New("network down")
		f := newFixture(t, failingTransport{err: failure})
		require.NoError(t, f.store.Set(store.AccessTokenKey, "abc123"))

		_, err := f.service.Me(context.Background())
		assert.True(t, errors.Is(err, failure))
		assert.False(t, store.HasToken(f.store))
		assert.Equal(t, 1, f.location.Count(navigation.LoginPath))
	})
}

func TestService_Register(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user, err := f.service.Register(ctx, &NewUser{Username: "maria", Email: "maria@crm.local", NomeCompleto: "Maria", Senha: "segredo123"})
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.False(t, store.HasToken(f.store))

	_, err = f.service.Register(ctx, &NewUser{Username: "maria", Senha: "segredo123"})
	assert.Equal(t, http.StatusBadRequest, api.StatusCode(err))

	_, err = f.service.Login(ctx, "maria", "segredo123")
	assert.NoError(t, err)
}

func TestService_Logout(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.store.Set(store.AccessTokenKey, "abc123"))
	require.NoError(t, f.service.Logout())
	assert.False(t, store.HasToken(f.store))
	assert.Equal(t, navigation.LoginPath, f.location.Path())
}

func TestService_Claims(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.service.Claims()
	assert.Same(t, ErrNoCredential, err)

	require.NoError(t, f.store.Set(store.AccessTokenKey, "abc123"))
	_, err = f.service.Claims()
	assert.True(t, errors.Is(err, ErrOpaqueToken))
}

type failingTransport struct {
	err error
}

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}
