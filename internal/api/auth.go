// ABOUTME: Login call implementing the session store's Authenticator contract
// ABOUTME: Maps 401 to invalid credentials and 403 to a deactivated account

package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
)

// authResponse is the backend's login payload.
type authResponse struct {
	Token      string `json:"token"`
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Email      string `json:"email"`
	FotoPerfil string `json:"fotoPerfil"`
	Rol        string `json:"rol"`
}

// Login authenticates against POST /auth/login. It satisfies
// session.Authenticator: a 401 becomes session.ErrInvalidCredentials and
// a 403 (deactivated account) becomes session.ErrCuentaBaja.
func (c *Client) Login(ctx context.Context, email, clave string) (*session.LoginResult, error) {
	payload := map[string]string{"email": email, "clave": clave}

	var resp authResponse
	if err := c.do(ctx, "POST", "/auth/login", payload, &resp); err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			return nil, session.ErrInvalidCredentials
		case errors.Is(err, ErrForbidden):
			return nil, session.ErrCuentaBaja
		default:
			return nil, fmt.Errorf("login: %w", err)
		}
	}

	return &session.LoginResult{
		Token:      resp.Token,
		ID:         resp.ID,
		Nombre:     resp.Nombre,
		Apellido:   resp.Apellido,
		Email:      resp.Email,
		FotoPerfil: resp.FotoPerfil,
		Rol:        model.ParseRol(resp.Rol),
	}, nil
}
