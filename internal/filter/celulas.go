// ABOUTME: Pure, order-preserving filtering of the células collection
// ABOUTME: AND-combines day, gender, time window, líder, and free-text clauses

package filter

import (
	"strings"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

// ApplyFilters narrows células to those matching every criteria clause.
// The input is never mutated and relative order is preserved.
func ApplyFilters(celulas []model.Celula, c Criteria) []model.Celula {
	result := make([]model.Celula, 0, len(celulas))
	for _, celula := range celulas {
		if matches(celula, c) {
			result = append(result, celula)
		}
	}
	return result
}

// matches evaluates the AND of all clauses for one célula.
func matches(celula model.Celula, c Criteria) bool {
	return matchesDia(celula, c.Dias) &&
		matchesGenero(celula, c.Genero) &&
		matchesHora(celula.Hora(), c.HoraDesde, c.HoraHasta) &&
		matchesLider(celula, c.LiderID) &&
		matchesTexto(celula, c.SearchText)
}

func matchesDia(celula model.Celula, dias []string) bool {
	if len(dias) == 0 {
		return true
	}
	for _, dia := range dias {
		if strings.EqualFold(celula.Dia, dia) {
			return true
		}
	}
	return false
}

func matchesGenero(celula model.Celula, genero string) bool {
	return genero == "" || strings.EqualFold(celula.Genero, genero)
}

// matchesHora compares zero-padded HH:MM strings. Lexicographic order
// equals chronological order for that format, which is an invariant of
// the backend's LocalTime serialization.
func matchesHora(hora, desde, hasta string) bool {
	switch {
	case desde == "" && hasta == "":
		return true
	case desde != "" && hasta == "":
		return hora >= desde
	case desde == "" && hasta != "":
		return hora <= hasta
	default:
		return hora >= desde && hora <= hasta
	}
}

func matchesLider(celula model.Celula, liderID int64) bool {
	return liderID == 0 || celula.LiderID() == liderID
}

func matchesTexto(celula model.Celula, texto string) bool {
	if texto == "" {
		return true
	}
	query := Normalize(texto)
	return strings.Contains(Normalize(celula.Nombre), query) ||
		strings.Contains(Normalize(celula.Direccion), query)
}

// AssignedCelula returns the célula the user already leads or serves as
// timoteo in, or nil when the user is free. Comparison is by user id.
func AssignedCelula(celulas []model.Celula, usuarioID int64) *model.Celula {
	if usuarioID == 0 {
		return nil
	}
	for i := range celulas {
		if celulas[i].LiderID() == usuarioID || celulas[i].TimoteoID() == usuarioID {
			return &celulas[i]
		}
	}
	return nil
}

// AssignmentConflict returns the célula that blocks assigning the user,
// or nil when the assignment is allowed. Editing the célula the user is
// already assigned to is not a conflict; the check compares célula ids,
// not names, so two células sharing a name cannot be confused.
func AssignmentConflict(celulas []model.Celula, usuarioID, editingCelulaID int64) *model.Celula {
	assigned := AssignedCelula(celulas, usuarioID)
	if assigned == nil || assigned.ID == editingCelulaID {
		return nil
	}
	return assigned
}
