// ABOUTME: Tests for the backend HTTP client using httptest servers
// ABOUTME: Covers token attachment, status mapping, login errors, and decoding

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) BearerToken(context.Context) (string, bool) {
	return s.token, s.ok
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Celula{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetTokenSource(staticTokens{token: "abc123", ok: true})

	_, err := c.Celulas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoTokenProceedsUnauthenticated(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode([]model.Celula{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetTokenSource(staticTokens{ok: false})

	_, err := c.Celulas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "expired/absent token must not be attached")
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{409, ErrConflict},
		{500, ErrServer},
		{503, ErrServer},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"algo salió mal"}`, tt.status)
		}))
		c := NewClient(srv.URL)

		_, err := c.Celulas(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.sentinel, "status %d", tt.status)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tt.status, apiErr.Status)
		assert.Equal(t, "algo salió mal", apiErr.Mensaje)
		srv.Close()
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	_, err := c.Celulas(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "network failures are not APIErrors")
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "ana@example.com", creds["email"])
		require.Equal(t, "secreta", creds["clave"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok", "id": 3, "nombre": "Ana", "apellido": "García",
			"email": "ana@example.com", "rol": "ADMIN",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	result, err := c.Login(context.Background(), "ana@example.com", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, int64(3), result.ID)
	assert.Equal(t, model.RolAdmin, result.Rol)
}

func TestClient_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{401, session.ErrInvalidCredentials},
		{403, session.ErrCuentaBaja},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "", tt.status)
		}))
		c := NewClient(srv.URL)

		_, err := c.Login(context.Background(), "x@example.com", "mal")
		assert.ErrorIs(t, err, tt.sentinel, "status %d", tt.status)
		srv.Close()
	}
}

func TestClient_UsuarioLibre(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"free user returns null", "null", ""},
		{"free user returns empty body", "", ""},
		{"assigned user returns célula name", `"Jóvenes Centro"`, "Jóvenes Centro"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/celulas/usuarioLibre/7", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			nombre, err := c.UsuarioLibre(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nombre)
		})
	}
}

func TestClient_Enumeraciones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/celulas/dias":
			json.NewEncoder(w).Encode([]map[string]string{{"nombre": "LUNES"}, {"nombre": "MARTES"}})
		case "/usuarios/roles":
			json.NewEncoder(w).Encode([]map[string]string{{"nombre": "ADMIN"}, {"nombre": "LIDER"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	dias, err := c.Dias(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"LUNES", "MARTES"}, dias)

	roles, err := c.Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Rol{model.RolAdmin, model.RolLider}, roles)
}

func TestClient_ExistsByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/usuarios/existByEmail/ana@example.com", r.URL.Path)
		w.Write([]byte("true"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	exists, err := c.ExistsByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
