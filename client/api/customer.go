package api

import (
	"context"
	"net/url"
	"strconv"
)

// Customer is a CRM client record.
type Customer struct {
	ID             int      `json:"id,omitempty"`
	Nome           string   `json:"nome"`
	Email          string   `json:"email"`
	Telefone       string   `json:"telefone"`
	CPF            string   `json:"cpf"`
	Endereco       string   `json:"endereco"`
	Cidade         string   `json:"cidade,omitempty"`
	Bairro         string   `json:"bairro,omitempty"`
	CEP            string   `json:"cep,omitempty"`
	Estado         string   `json:"estado,omitempty"`
	TipoCliente    string   `json:"tipo_cliente,omitempty"`
	StatusServico  string   `json:"status_servico,omitempty"`
	ValorMensal    *float64 `json:"valor_mensal,omitempty"`
	DiaVencimento  *int     `json:"dia_vencimento,omitempty"`
	Ativo          bool     `json:"ativo"`
	DataCadastro   string   `json:"data_cadastro,omitempty"`
	DataNascimento string   `json:"data_nascimento,omitempty"`
}

// CustomerMatch is a search hit.
type CustomerMatch struct {
	ID            int     `json:"id"`
	Nome          string  `json:"nome"`
	ValorMensal   float64 `json:"valor_mensal"`
	DiaVencimento *int    `json:"dia_vencimento"`
}

// Customers wraps the /clientes endpoints.
type Customers struct {
	client *Client
}

func (c *Client) Customers() *Customers {
	return &Customers{client: c}
}

func (s *Customers) List(ctx context.Context) ([]Customer, error) {
	var ret []Customer
	err := s.client.Get(ctx, "/clientes/", &ret)
	return ret, err
}

func (s *Customers) Search(ctx context.Context, query string) ([]CustomerMatch, error) {
	var ret []CustomerMatch
	err := s.client.Get(ctx, "/clientes/search?q="+url.QueryEscape(query), &ret)
	return ret, err
}

func (s *Customers) Get(ctx context.Context, id int) (*Customer, error) {
	ret := &Customer{}
	if err := s.client.Get(ctx, "/clientes/"+strconv.Itoa(id), ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Customers) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	ret := &Customer{}
	if err := s.client.Post(ctx, "/clientes/", customer, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Deactivate marks the customer inactive.
func (s *Customers) Deactivate(ctx context.Context, id int) error {
	return s.client.Delete(ctx, "/clientes/"+strconv.Itoa(id), nil)
}
