// ABOUTME: Typed façade over the /usuarios backend routes
// ABOUTME: CRUD plus roles, líderes/timoteos listings, email check, and password change

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// Usuarios fetches the full user collection.
func (c *Client) Usuarios(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := c.do(ctx, "GET", "/usuarios", nil, &usuarios); err != nil {
		return nil, fmt.Errorf("listing usuarios: %w", err)
	}
	return usuarios, nil
}

// Usuario fetches a single user by id.
func (c *Client) Usuario(ctx context.Context, id int64) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, "GET", fmt.Sprintf("/usuarios/%d", id), nil, &usuario); err != nil {
		return nil, fmt.Errorf("fetching usuario %d: %w", id, err)
	}
	return &usuario, nil
}

// CreateUsuario creates a user. The input must already be validated.
func (c *Client) CreateUsuario(ctx context.Context, in model.UsuarioInput) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, "POST", "/usuarios/create", in, &usuario); err != nil {
		return nil, fmt.Errorf("creating usuario: %w", err)
	}
	return &usuario, nil
}

// UpdateUsuario updates a user by id.
func (c *Client) UpdateUsuario(ctx context.Context, id int64, in model.UsuarioInput) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := c.do(ctx, "PUT", fmt.Sprintf("/usuarios/update/%d", id), in, &usuario); err != nil {
		return nil, fmt.Errorf("updating usuario %d: %w", id, err)
	}
	return &usuario, nil
}

// DeleteUsuario deactivates a user (soft delete: the backend sets
// fechaBaja rather than removing the row).
func (c *Client) DeleteUsuario(ctx context.Context, id int64) error {
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/usuarios/delete/%d", id), nil, nil); err != nil {
		return fmt.Errorf("deleting usuario %d: %w", id, err)
	}
	return nil
}

// nombreItem is the backend's {"nombre": "..."} enumeration element.
type nombreItem struct {
	Nombre string `json:"nombre"`
}

// Roles fetches the role enumeration.
func (c *Client) Roles(ctx context.Context) ([]model.Rol, error) {
	var items []nombreItem
	if err := c.do(ctx, "GET", "/usuarios/roles", nil, &items); err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	roles := make([]model.Rol, len(items))
	for i, item := range items {
		roles[i] = model.ParseRol(item.Nombre)
	}
	return roles, nil
}

// Lideres fetches the users eligible as líder.
func (c *Client) Lideres(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := c.do(ctx, "GET", "/usuarios/lideres", nil, &usuarios); err != nil {
		return nil, fmt.Errorf("listing líderes: %w", err)
	}
	return usuarios, nil
}

// Timoteos fetches the users eligible as timoteo.
func (c *Client) Timoteos(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := c.do(ctx, "GET", "/usuarios/timoteos", nil, &usuarios); err != nil {
		return nil, fmt.Errorf("listing timoteos: %w", err)
	}
	return usuarios, nil
}

// ExistsByEmail reports whether a user with the given email exists.
// Used to block duplicate registrations before submitting the form.
func (c *Client) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	path := "/usuarios/existByEmail/" + url.PathEscape(email)
	if err := c.do(ctx, "GET", path, nil, &exists); err != nil {
		return false, fmt.Errorf("checking email %q: %w", email, err)
	}
	return exists, nil
}

// UpdateClave changes a user's password.
func (c *Client) UpdateClave(ctx context.Context, id int64, clave string) error {
	payload := map[string]string{"clave": clave}
	if err := c.do(ctx, "POST", fmt.Sprintf("/usuarios/updateClave/%d", id), payload, nil); err != nil {
		return fmt.Errorf("updating clave for usuario %d: %w", id, err)
	}
	return nil
}
