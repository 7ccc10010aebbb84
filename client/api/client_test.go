package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/crm/client/api"
	"github.com/viant/crm/client/auth/mock"
	"github.com/viant/crm/client/auth/navigation"
	"github.com/viant/crm/client/auth/store"
	"github.com/viant/crm/client/auth/transport"
)

func TestClient_Endpoint(t *testing.T) {
	client := api.New(nil, "http://crm.local/")
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "/clientes", expect: "/api/v1/clientes"},
		{input: "clientes", expect: "/api/v1/clientes"},
		{input: "/api/clientes", expect: "/api/v1/clientes"},
		{input: "/api/v1/clientes", expect: "/api/v1/clientes"},
		{input: "/api/v1", expect: "/api/v1/"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, client.Endpoint(testCase.input), testCase.input)
	}
}

func TestClient_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/detail":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"CPF inválido"}`))
		case "/api/v1/list":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":[{"loc":["body","cpf"]}]}`))
		case "/api/v1/empty":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}
	}))
	defer server.Close()
	client := api.New(server.Client(), server.URL)
	ctx := context.Background()

	var testCases = []struct {
		endpoint string
		status   int
		detail   string
	}{
		{endpoint: "/detail", status: http.StatusBadRequest, detail: "CPF inválido"},
		{endpoint: "/list", status: http.StatusUnprocessableEntity, detail: `[{"loc":["body","cpf"]}]`},
		{endpoint: "/empty", status: http.StatusNotFound, detail: "HTTP 404"},
		{endpoint: "/html", status: http.StatusInternalServerError, detail: "Erro desconhecido"},
	}
	for _, testCase := range testCases {
		err := client.Get(ctx, testCase.endpoint, nil)
		require.Error(t, err, testCase.endpoint)
		apiErr, ok := err.(*api.Error)
		require.True(t, ok, testCase.endpoint)
		assert.Equal(t, testCase.status, apiErr.StatusCode, testCase.endpoint)
		assert.Equal(t, testCase.detail, apiErr.Detail, testCase.endpoint)
		assert.Equal(t, testCase.status, api.StatusCode(err))
	}
	assert.Equal(t, 0, api.StatusCode(nil))
}

func TestCustomers(t *testing.T) {
	server, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	defer server.Close()
	valor := 99.9
	server.Service.AddCustomer(mock.Customer{Nome: "Ana Souza", CPF: "12345678901", ValorMensal: &valor})
	server.Service.AddCustomer(mock.Customer{Nome: "Bruno Lima", CPF: "98765432100"})

	token, err := server.Service.Token("admin")
	require.NoError(t, err)
	rt, err := transport.New(
		transport.WithStore(store.NewMemoryStore(store.WithToken(token))),
		transport.WithNavigator(navigation.NewLocation("/clientes")),
		transport.WithLogger(nil),
	)
	require.NoError(t, err)
	client := api.New(rt.Client(), server.URL)
	ctx := context.Background()

	list, err := client.Customers().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Souza", list[0].Nome)

	matches, err := client.Customers().Search(ctx, "bruno")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Bruno Lima", matches[0].Nome)

	customer, err := client.Customers().Get(ctx, list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, customer.ValorMensal)
	assert.Equal(t, 99.9, *customer.ValorMensal)

	created, err := client.Customers().Create(ctx, &api.Customer{Nome: "Carla", CPF: "11122233344"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	require.NoError(t, client.Customers().Deactivate(ctx, created.ID))
	list, err = client.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = client.Customers().Get(ctx, 999)
	assert.Equal(t, http.StatusNotFound, api.StatusCode(err))
	assert.Equal(t, "Bearer "+token, server.Service.LastAuthorization())
}
