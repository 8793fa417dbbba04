// ABOUTME: Tests for the células filter engine
// ABOUTME: Covers clause combinations, time-window boundaries, purity, and idempotence

package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

func sampleCelulas() []model.Celula {
	return []model.Celula{
		{
			ID: 1, Nombre: "Jóvenes Centro", Dia: model.DiaJueves, Genero: model.GeneroHombre,
			HoraInicio: "19:30:00", Direccion: "Calle 50 n°1234",
			Lider: &model.Usuario{ID: 7}, Timoteo: &model.Usuario{ID: 9},
		},
		{
			ID: 2, Nombre: "Mujeres Oeste", Dia: model.DiaMartes, Genero: model.GeneroMujer,
			HoraInicio: "10:00:00", Direccion: "Av. 44 n°987",
			Lider: &model.Usuario{ID: 8},
		},
		{
			ID: 3, Nombre: "Hombres Norte", Dia: model.DiaJueves, Genero: model.GeneroHombre,
			HoraInicio: "21:15:00", Direccion: "Diagonal 74 n°456",
			Lider: &model.Usuario{ID: 11},
		},
	}
}

func ids(celulas []model.Celula) []int64 {
	out := make([]int64, len(celulas))
	for i, c := range celulas {
		out[i] = c.ID
	}
	return out
}

func TestApplyFilters_EmptyCriteriaMatchesAll(t *testing.T) {
	celulas := sampleCelulas()
	got := ApplyFilters(celulas, Criteria{})
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestApplyFilters_Dia(t *testing.T) {
	celulas := sampleCelulas()

	got := ApplyFilters(celulas, Criteria{Dias: []string{"jueves"}})
	assert.Equal(t, []int64{1, 3}, ids(got), "day matching is case-insensitive")

	got = ApplyFilters(celulas, Criteria{Dias: []string{model.DiaMartes, model.DiaJueves}})
	assert.Equal(t, []int64{1, 2, 3}, ids(got))

	got = ApplyFilters(celulas, Criteria{Dias: []string{model.DiaDomingo}})
	assert.Empty(t, got)
}

func TestApplyFilters_Genero(t *testing.T) {
	celulas := sampleCelulas()
	got := ApplyFilters(celulas, Criteria{Genero: "mujer"})
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApplyFilters_VentanaHoraria(t *testing.T) {
	celulas := sampleCelulas()

	tests := []struct {
		name  string
		desde string
		hasta string
		want  []int64
	}{
		{"both bounds include 19:30", "18:00", "20:00", []int64{1}},
		{"lower bound at 20:00 excludes 19:30", "20:00", "", []int64{3}},
		{"only upper bound", "", "19:30", []int64{1, 2}},
		{"inclusive boundary", "19:30", "19:30", []int64{1}},
		{"no bounds", "", "", []int64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(celulas, Criteria{HoraDesde: tt.desde, HoraHasta: tt.hasta})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyFilters_Lider(t *testing.T) {
	celulas := sampleCelulas()
	got := ApplyFilters(celulas, Criteria{LiderID: 8})
	assert.Equal(t, []int64{2}, ids(got))

	// Timoteo id must not match the líder clause
	got = ApplyFilters(celulas, Criteria{LiderID: 9})
	assert.Empty(t, got)
}

func TestApplyFilters_SearchText(t *testing.T) {
	celulas := sampleCelulas()

	got := ApplyFilters(celulas, Criteria{SearchText: "jovenes"})
	assert.Equal(t, []int64{1}, ids(got), "diacritic-insensitive name match")

	got = ApplyFilters(celulas, Criteria{SearchText: "diagonal 74"})
	assert.Equal(t, []int64{3}, ids(got), "matches dirección too")
}

func TestApplyFilters_ClausesCombineWithAnd(t *testing.T) {
	celulas := sampleCelulas()
	got := ApplyFilters(celulas, Criteria{
		Dias:      []string{model.DiaJueves},
		Genero:    model.GeneroHombre,
		HoraDesde: "20:00",
	})
	assert.Equal(t, []int64{3}, ids(got))
}

func TestApplyFilters_Idempotente(t *testing.T) {
	celulas := sampleCelulas()
	criteria := Criteria{Dias: []string{model.DiaJueves}, Genero: model.GeneroHombre}

	once := ApplyFilters(celulas, criteria)
	twice := ApplyFilters(once, criteria)
	assert.Equal(t, once, twice)
}

func TestApplyFilters_PreservaOrdenYNoMuta(t *testing.T) {
	celulas := sampleCelulas()
	original := sampleCelulas()

	got := ApplyFilters(celulas, Criteria{Genero: model.GeneroHombre})
	assert.Equal(t, []int64{1, 3}, ids(got), "matches keep relative input order")
	assert.Equal(t, original, celulas, "input must not be mutated")
}

func TestApplyFilters_CelulaSinHora(t *testing.T) {
	celulas := []model.Celula{{ID: 1, Nombre: "Sin hora", Lider: &model.Usuario{ID: 1}}}

	// An empty hora fails any lower bound but passes when unbounded
	assert.Empty(t, ApplyFilters(celulas, Criteria{HoraDesde: "08:00"}))
	assert.Len(t, ApplyFilters(celulas, Criteria{}), 1)
}

func TestCriteria_Reset(t *testing.T) {
	c := Criteria{Dias: []string{model.DiaLunes}, Genero: model.GeneroMujer, HoraDesde: "10:00", LiderID: 4, SearchText: "x"}
	c.Reset()
	assert.True(t, c.Equal(Criteria{}))
}

func TestAssignedCelula(t *testing.T) {
	celulas := sampleCelulas()

	assigned := AssignedCelula(celulas, 7)
	require.NotNil(t, assigned)
	assert.Equal(t, int64(1), assigned.ID)

	// Timoteo position counts as assigned
	assigned = AssignedCelula(celulas, 9)
	require.NotNil(t, assigned)
	assert.Equal(t, int64(1), assigned.ID)

	assert.Nil(t, AssignedCelula(celulas, 99))
	assert.Nil(t, AssignedCelula(celulas, 0))
}

func TestAssignmentConflict_ComparaPorID(t *testing.T) {
	// Two células sharing a name must not be confused: the check is by id.
	celulas := []model.Celula{
		{ID: 1, Nombre: "Renuevo", Lider: &model.Usuario{ID: 7}},
		{ID: 2, Nombre: "Renuevo", Lider: &model.Usuario{ID: 8}},
	}

	// Re-assigning user 7 within célula 1 is not a conflict
	assert.Nil(t, AssignmentConflict(celulas, 7, 1))

	// Assigning user 7 to célula 2 conflicts with célula 1 despite the
	// identical names
	conflict := AssignmentConflict(celulas, 7, 2)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)

	// A free user never conflicts
	assert.Nil(t, AssignmentConflict(celulas, 99, 2))
}
