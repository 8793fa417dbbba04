// ABOUTME: Diacritic- and case-insensitive free-text search over users
// ABOUTME: Matches the normalized query against full name or email

package filter

import (
	"strings"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// ApplySearch narrows users to those whose normalized "nombre apellido"
// or email contains the normalized query as a substring. An empty query
// matches everyone. Order is preserved and the input is never mutated.
func ApplySearch(usuarios []model.Usuario, query string) []model.Usuario {
	if query == "" {
		result := make([]model.Usuario, len(usuarios))
		copy(result, usuarios)
		return result
	}

	normalized := Normalize(query)
	result := make([]model.Usuario, 0, len(usuarios))
	for _, u := range usuarios {
		if strings.Contains(Normalize(u.NombreCompleto()), normalized) ||
			strings.Contains(Normalize(u.Email), normalized) {
			result = append(result, u)
		}
	}
	return result
}
