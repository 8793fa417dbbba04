// ABOUTME: In-memory mock of the backend REST API for development and tests
// ABOUTME: Serves the /auth, /usuarios, and /celulas contracts over gorilla/mux

package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// TokenTTL is the lifetime of issued tokens.
const TokenTTL = time.Hour

// Server holds the in-memory dataset and the signing secret.
type Server struct {
	mu       sync.Mutex
	secret   []byte
	logger   *slog.Logger
	nextID   int64
	usuarios []*model.Usuario
	claves   map[int64][]byte // bcrypt hashes by user id
	celulas  []*model.Celula
}

// NewServer creates a mock backend signing tokens with the given secret.
func NewServer(secret []byte) *Server {
	s := &Server{
		secret: secret,
		logger: slog.Default().With("component", "mockapi"),
		nextID: 1,
		claves: make(map[int64][]byte),
	}
	return s
}

// Router builds the HTTP routes. Everything except /auth/login requires
// a valid bearer token.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(s.requireToken)

	protected.HandleFunc("/usuarios", s.handleListUsuarios).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/roles", s.handleRoles).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/lideres", s.handleLideres).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/timoteos", s.handleTimoteos).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/existByEmail/{email}", s.handleExistByEmail).Methods(http.MethodGet)
	protected.HandleFunc("/usuarios/create", s.handleCreateUsuario).Methods(http.MethodPost)
	protected.HandleFunc("/usuarios/update/{id:[0-9]+}", s.handleUpdateUsuario).Methods(http.MethodPut)
	protected.HandleFunc("/usuarios/updateClave/{id:[0-9]+}", s.handleUpdateClave).Methods(http.MethodPost)
	protected.HandleFunc("/usuarios/delete/{id:[0-9]+}", s.handleDeleteUsuario).Methods(http.MethodDelete)
	protected.HandleFunc("/usuarios/{id:[0-9]+}", s.handleGetUsuario).Methods(http.MethodGet)

	protected.HandleFunc("/celulas", s.handleListCelulas).Methods(http.MethodGet)
	protected.HandleFunc("/celulas/dias", s.handleDias).Methods(http.MethodGet)
	protected.HandleFunc("/celulas/generos", s.handleGeneros).Methods(http.MethodGet)
	protected.HandleFunc("/celulas/usuarioLibre/{id:[0-9]+}", s.handleUsuarioLibre).Methods(http.MethodGet)
	protected.HandleFunc("/celulas/create", s.handleCreateCelula).Methods(http.MethodPost)
	protected.HandleFunc("/celulas/update/{id:[0-9]+}", s.handleUpdateCelula).Methods(http.MethodPatch)
	protected.HandleFunc("/celulas/delete/{id:[0-9]+}", s.handleDeleteCelula).Methods(http.MethodDelete)
	protected.HandleFunc("/celulas/{id:[0-9]+}", s.handleGetCelula).Methods(http.MethodGet)

	return r
}

// AddUsuario seeds a user with the given password and returns it.
func (s *Server) AddUsuario(u model.Usuario, clave string) (*model.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	stored := u
	s.usuarios = append(s.usuarios, &stored)
	s.claves[stored.ID] = hash
	return &stored, nil
}

// AddCelula seeds a célula and returns it.
func (s *Server) AddCelula(c model.Celula) *model.Celula {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID
	s.nextID++
	stored := c
	s.celulas = append(s.celulas, &stored)
	return &stored
}

// issueToken signs an HS256 token carrying the user's identity claims.
func (s *Server) issueToken(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(u.ID, 10),
		"nombre":   u.Nombre,
		"apellido": u.Apellido,
		"email":    u.Email,
		"rol":      string(u.Rol),
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// requireToken rejects requests without a valid, unexpired bearer token.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		token, err := jwt.Parse(header[len(prefix):], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError sends a {"message": ...} error body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// pathID extracts the numeric {id} route variable.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
