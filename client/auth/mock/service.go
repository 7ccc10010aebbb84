package mock

import (
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	NomeCompleto string `json:"nome_completo"`
	Role         string `json:"role"`
	Ativo        bool   `json:"ativo"`
	passwordHash []byte
}

// Customer is a stored customer record.
type Customer struct {
	ID            int      `json:"id"`
	Nome          string   `json:"nome"`
	Email         string   `json:"email"`
	Telefone      string   `json:"telefone"`
	CPF           string   `json:"cpf"`
	Endereco      string   `json:"endereco"`
	ValorMensal   *float64 `json:"valor_mensal,omitempty"`
	DiaVencimento *int     `json:"dia_vencimento,omitempty"`
	Ativo         bool     `json:"ativo"`
}

// Service holds the mock API state.
type Service struct {
	mu            sync.RWMutex
	Secret        []byte
	TokenTTL      time.Duration
	users         map[string]*User
	customers     map[int]*Customer
	revoked       map[string]bool
	nextUserID    int
	nextID        int
	authorization []string
	paths         []string
}

func NewService() *Service {
	return &Service{
		Secret:    []byte("crm-mock-secret"),
		TokenTTL:  time.Hour,
		users:     map[string]*User{},
		customers: map[int]*Customer{},
		revoked:   map[string]bool{},
	}
}

// AddUser registers username with a bcrypt hash of password.
func (s *Service) AddUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user := &User{ID: s.nextUserID, Username: username, Email: username + "@crm.local", NomeCompleto: username, Role: "admin", Ativo: true, passwordHash: hash}
	s.users[username] = user
	return user, nil
}

// AddCustomer stores customer, assigning an ID.
func (s *Service) AddCustomer(customer Customer) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	customer.ID = s.nextID
	customer.Ativo = true
	s.customers[customer.ID] = &customer
	return customer.ID
}

// Revoke makes token be rejected with 401.
func (s *Service) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
}

// LastAuthorization returns the Authorization header of the last request.
func (s *Service) LastAuthorization() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.authorization) == 0 {
		return ""
	}
	return s.authorization[len(s.authorization)-1]
}

// Paths returns every request path received.
func (s *Service) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.paths...)
}

func (s *Service) record(path, authorization string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, path)
	s.authorization = append(s.authorization, authorization)
}

func (s *Service) user(username string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}

func (s *Service) listCustomers(query string) []*Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ret []*Customer
	for _, c := range s.customers {
		if !c.Ativo {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Nome), strings.ToLower(query)) {
			continue
		}
		ret = append(ret, c)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}

// Server is an httptest server running the mock API.
type Server struct {
	*httptest.Server
	Service *Service
}

// NewHTTPTestServer starts a mock API with a user admin/admin123.
func NewHTTPTestServer() (*Server, error) {
	service := NewService()
	if _, err := service.AddUser("admin", "admin123"); err != nil {
		return nil, err
	}
	return &Server{Server: httptest.NewServer(service.Router()), Service: service}, nil
}
