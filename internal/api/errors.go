// ABOUTME: Error taxonomy for backend calls mapped from HTTP status codes
// ABOUTME: Sentinel errors plus APIError carrying the status and backend message

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the HTTP failure classes. Call sites match with
// errors.Is; the concrete *APIError carries the status and message.
var (
	ErrUnauthorized = errors.New("no autenticado")
	ErrForbidden    = errors.New("sin permiso")
	ErrNotFound     = errors.New("no encontrado")
	ErrConflict     = errors.New("conflicto de asignación")
	ErrServer       = errors.New("error del servidor")
)

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Mensaje string
}

func (e *APIError) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Mensaje)
	}
	return fmt.Sprintf("backend respondió %d", e.Status)
}

// Unwrap maps the status code onto the sentinel taxonomy so callers can
// use errors.Is without inspecting status codes themselves.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 401:
		return ErrUnauthorized
	case e.Status == 403:
		return ErrForbidden
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 409:
		return ErrConflict
	case e.Status >= 500:
		return ErrServer
	default:
		return nil
	}
}
