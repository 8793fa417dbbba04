// ABOUTME: Session type and JWT expiry extraction for the authenticated user
// ABOUTME: The token is decoded without signature verification, as a client does

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// Authentication errors surfaced by SignIn.
var (
	// ErrInvalidCredentials maps the backend's 401 on login.
	ErrInvalidCredentials = errors.New("email o clave incorrectos")

	// ErrCuentaBaja maps the backend's 403 on login: the account exists
	// but has been deactivated.
	ErrCuentaBaja = errors.New("no tenés permiso para acceder o el usuario fue dado de baja")
)

// Session is the authenticated user's identity, role, and bearer token.
type Session struct {
	SubjectID   int64
	Nombre      string
	Apellido    string
	Email       string
	Rol         model.Rol
	FotoPerfil  string
	Token       string
	TokenExpiry time.Time
}

// NombreCompleto returns "nombre apellido" for display.
func (s *Session) NombreCompleto() string {
	return s.Nombre + " " + s.Apellido
}

// Expired reports whether the session token has an exp claim in the past.
// A zero TokenExpiry (token without exp) never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.TokenExpiry.IsZero() && s.TokenExpiry.Before(now)
}

// tokenExpiry extracts the exp claim from a JWT without verifying its
// signature. The console never holds the signing secret; it only needs
// the expiry to decide whether to attach the token.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("decoding token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
