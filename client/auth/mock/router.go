package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type contextUserKey struct{}

// Router returns the mock API routes.
func (s *Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recorder)
	r.NotFoundHandler = s.recorder(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	}))

	r.HandleFunc("/api/v1/usuarios/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/usuarios/registrar", s.register).Methods(http.MethodPost)

	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(s.authenticate)
	protected.HandleFunc("/usuarios/me", s.me).Methods(http.MethodGet)
	protected.HandleFunc("/clientes/", s.listCustomersHandler).Methods(http.MethodGet)
	protected.HandleFunc("/clientes/", s.createCustomer).Methods(http.MethodPost)
	protected.HandleFunc("/clientes/search", s.searchCustomers).Methods(http.MethodGet)
	protected.HandleFunc("/clientes/{id:[0-9]+}", s.getCustomer).Methods(http.MethodGet)
	protected.HandleFunc("/clientes/{id:[0-9]+}", s.deactivateCustomer).Methods(http.MethodDelete)
	return r
}

func (s *Service) recorder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r.URL.Path, r.Header.Get("Authorization"))
		next.ServeHTTP(w, r)
	})
}

func (s *Service) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			writeDetail(w, http.StatusUnauthorized, "Invalid authorization header")
			return
		}
		username, err := s.verify(parts[1])
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}
		if _, ok := s.user(username); !ok {
			writeDetail(w, http.StatusUnauthorized, "Usuário não encontrado")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextUserKey{}, username)))
	})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Senha    string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid JSON")
		return
	}
	user, ok := s.user(credentials.Username)
	if !ok || bcryptMismatch(user, credentials.Senha) {
		writeDetail(w, http.StatusUnauthorized, "Usuário ou senha inválidos")
		return
	}
	token, err := s.createJWT(user.Username)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"token_type":   "bearer",
		"usuario":      user,
	})
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Nome     string `json:"nome_completo"`
		Senha    string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid JSON")
		return
	}
	if len(payload.Senha) < 8 {
		writeDetail(w, http.StatusBadRequest, "Senha deve ter pelo menos 8 caracteres")
		return
	}
	if _, ok := s.user(payload.Username); ok {
		writeDetail(w, http.StatusBadRequest, "Usuário já existe")
		return
	}
	user, err := s.AddUser(payload.Username, payload.Senha)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Server error")
		return
	}
	s.mu.Lock()
	if payload.Email != "" {
		user.Email = payload.Email
	}
	if payload.Nome != "" {
		user.NomeCompleto = payload.Nome
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, user)
}

func (s *Service) me(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(contextUserKey{}).(string)
	user, _ := s.user(username)
	writeJSON(w, http.StatusOK, user)
}

func (s *Service) listCustomersHandler(w http.ResponseWriter, r *http.Request) {
	list := s.listCustomers("")
	if list == nil {
		list = []*Customer{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Service) searchCustomers(w http.ResponseWriter, r *http.Request) {
	var ret = []map[string]interface{}{}
	for _, c := range s.listCustomers(r.URL.Query().Get("q")) {
		valor := 0.0
		if c.ValorMensal != nil {
			valor = *c.ValorMensal
		}
		ret = append(ret, map[string]interface{}{"id": c.ID, "nome": c.Nome, "valor_mensal": valor, "dia_vencimento": c.DiaVencimento})
	}
	writeJSON(w, http.StatusOK, ret)
}

func (s *Service) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.RLock()
	c, ok := s.customers[id]
	s.mu.RUnlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Service) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	id := s.AddCustomer(c)
	s.mu.RLock()
	created := s.customers[id]
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, created)
}

func (s *Service) deactivateCustomer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	s.mu.Lock()
	c, ok := s.customers[id]
	if ok {
		c.Ativo = false
	}
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "Cliente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cliente desativado com sucesso"})
}

func bcryptMismatch(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword(user.passwordHash, []byte(password)) != nil
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
