// ABOUTME: Typed façade over the /celulas backend routes
// ABOUTME: CRUD plus day/gender enumerations and the usuarioLibre availability check

package api

import (
	"context"
	"fmt"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// Celulas fetches the full célula collection.
func (c *Client) Celulas(ctx context.Context) ([]model.Celula, error) {
	var celulas []model.Celula
	if err := c.do(ctx, "GET", "/celulas", nil, &celulas); err != nil {
		return nil, fmt.Errorf("listing células: %w", err)
	}
	return celulas, nil
}

// Celula fetches a single célula by id.
func (c *Client) Celula(ctx context.Context, id int64) (*model.Celula, error) {
	var celula model.Celula
	if err := c.do(ctx, "GET", fmt.Sprintf("/celulas/%d", id), nil, &celula); err != nil {
		return nil, fmt.Errorf("fetching célula %d: %w", id, err)
	}
	return &celula, nil
}

// CreateCelula creates a célula. The input must already be validated
// and the líder/timoteo availability checked.
func (c *Client) CreateCelula(ctx context.Context, in model.CelulaInput) (*model.Celula, error) {
	var celula model.Celula
	if err := c.do(ctx, "POST", "/celulas/create", in, &celula); err != nil {
		return nil, fmt.Errorf("creating célula: %w", err)
	}
	return &celula, nil
}

// UpdateCelula patches a célula by id.
func (c *Client) UpdateCelula(ctx context.Context, id int64, in model.CelulaInput) (*model.Celula, error) {
	var celula model.Celula
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/celulas/update/%d", id), in, &celula); err != nil {
		return nil, fmt.Errorf("updating célula %d: %w", id, err)
	}
	return &celula, nil
}

// DeleteCelula deactivates a célula, detaching its líder and timoteo.
func (c *Client) DeleteCelula(ctx context.Context, id int64) error {
	if err := c.do(ctx, "DELETE", fmt.Sprintf("/celulas/delete/%d", id), nil, nil); err != nil {
		return fmt.Errorf("deleting célula %d: %w", id, err)
	}
	return nil
}

// Dias fetches the weekday enumeration.
func (c *Client) Dias(ctx context.Context) ([]string, error) {
	var items []nombreItem
	if err := c.do(ctx, "GET", "/celulas/dias", nil, &items); err != nil {
		return nil, fmt.Errorf("listing días: %w", err)
	}
	dias := make([]string, len(items))
	for i, item := range items {
		dias[i] = item.Nombre
	}
	return dias, nil
}

// Generos fetches the gender enumeration.
func (c *Client) Generos(ctx context.Context) ([]string, error) {
	var items []nombreItem
	if err := c.do(ctx, "GET", "/celulas/generos", nil, &items); err != nil {
		return nil, fmt.Errorf("listing géneros: %w", err)
	}
	generos := make([]string, len(items))
	for i, item := range items {
		generos[i] = item.Nombre
	}
	return generos, nil
}

// UsuarioLibre checks whether a user is free for assignment. It returns
// "" when the user is free, otherwise the name of the célula they are
// already assigned to. The name-only contract is the backend's; for
// edit validation prefer the id-based filter.AssignmentConflict.
func (c *Client) UsuarioLibre(ctx context.Context, usuarioID int64) (string, error) {
	var nombre *string
	if err := c.do(ctx, "GET", fmt.Sprintf("/celulas/usuarioLibre/%d", usuarioID), nil, &nombre); err != nil {
		return "", fmt.Errorf("checking availability for usuario %d: %w", usuarioID, err)
	}
	if nombre == nil {
		return "", nil
	}
	return *nombre, nil
}
