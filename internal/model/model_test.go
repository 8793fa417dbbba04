// ABOUTME: Tests for entity helpers, role parsing, and input validation
// ABOUTME: Validation messages are user-facing Spanish, asserted verbatim

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRol(t *testing.T) {
	assert.Equal(t, RolAdmin, ParseRol("admin"))
	assert.Equal(t, RolLider, ParseRol(" LIDER "))
	assert.Equal(t, RolTimoteo, ParseRol("Timoteo"))
	assert.Equal(t, RolUsuario, ParseRol("usuario"))

	// Unknown roles pass through uppercased so new backend roles
	// still render instead of disappearing.
	assert.Equal(t, Rol("PASTOR"), ParseRol("pastor"))
}

func TestUsuarioActivo(t *testing.T) {
	u := Usuario{ID: 1, Nombre: "José", Apellido: "Pérez"}
	assert.True(t, u.Activo())
	assert.Equal(t, "José Pérez", u.NombreCompleto())

	baja := time.Now()
	u.FechaBaja = &baja
	assert.False(t, u.Activo())
}

func TestCelulaHora(t *testing.T) {
	c := Celula{HoraInicio: "19:30:00"}
	assert.Equal(t, "19:30", c.Hora())

	c.HoraInicio = "9:30"
	assert.Equal(t, "9:30", c.Hora())

	c.HoraInicio = ""
	assert.Equal(t, "", c.Hora())
}

func TestCelulaAssignmentIDs(t *testing.T) {
	c := Celula{Lider: &Usuario{ID: 7}}
	assert.Equal(t, int64(7), c.LiderID())
	assert.Equal(t, int64(0), c.TimoteoID())

	c.Timoteo = &Usuario{ID: 9}
	assert.Equal(t, int64(9), c.TimoteoID())
}

func validUsuarioInput() UsuarioInput {
	return UsuarioInput{
		Nombre:   "Ana",
		Apellido: "Núñez",
		Email:    "ana@example.com",
		Telefono: "2215550004",
		Rol:      RolTimoteo,
		Clave:    "secreta123",
	}
}

func TestUsuarioInputValidate(t *testing.T) {
	require.NoError(t, validUsuarioInput().Validate())

	cases := []struct {
		name    string
		mutate  func(*UsuarioInput)
		mensaje string
	}{
		{"nombre vacío", func(in *UsuarioInput) { in.Nombre = " " }, "El nombre es requerido"},
		{"apellido vacío", func(in *UsuarioInput) { in.Apellido = "" }, "El apellido es requerido"},
		{"email vacío", func(in *UsuarioInput) { in.Email = "" }, "El email es requerido"},
		{"email inválido", func(in *UsuarioInput) { in.Email = "ana@" }, "El email no es válido"},
		{"teléfono vacío", func(in *UsuarioInput) { in.Telefono = "" }, "El teléfono es requerido"},
		{"teléfono corto", func(in *UsuarioInput) { in.Telefono = "12345" }, "El teléfono debe tener 10 dígitos"},
		{"rol desconocido", func(in *UsuarioInput) { in.Rol = "PASTOR" }, "El rol no es válido"},
		{"clave corta", func(in *UsuarioInput) { in.Clave = "abc" }, "La clave debe tener al menos 6 caracteres"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validUsuarioInput()
			tc.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.mensaje, err.Error())
		})
	}
}

func TestUsuarioInputValidate_ClaveOpcional(t *testing.T) {
	// Updates leave clave empty; the password changes through its own call.
	in := validUsuarioInput()
	in.Clave = ""
	assert.NoError(t, in.Validate())
}

func validCelulaInput() CelulaInput {
	return CelulaInput{
		Nombre:     "Jóvenes Centro",
		Dia:        DiaJueves,
		Genero:     GeneroHombre,
		HoraInicio: "19:30:00",
		Direccion:  "Calle 50 n°1234, La Plata",
		Latitud:    -34.9516,
		Longitud:   -57.8912,
		LiderID:    7,
	}
}

func TestCelulaInputValidate(t *testing.T) {
	require.NoError(t, validCelulaInput().Validate())

	// "HH:MM" without seconds is accepted too.
	in := validCelulaInput()
	in.HoraInicio = "19:30"
	require.NoError(t, in.Validate())

	cases := []struct {
		name    string
		mutate  func(*CelulaInput)
		mensaje string
	}{
		{"nombre vacío", func(in *CelulaInput) { in.Nombre = "" }, "El nombre es requerido"},
		{"día inválido", func(in *CelulaInput) { in.Dia = "FERIADO" }, "El día no es válido"},
		{"género inválido", func(in *CelulaInput) { in.Genero = "MIXTO" }, "El género no es válido"},
		{"hora inválida", func(in *CelulaInput) { in.HoraInicio = "25:00" }, "La hora de inicio no es válida"},
		{"dirección vacía", func(in *CelulaInput) { in.Direccion = "" }, "La dirección es requerida"},
		{"sin ubicación", func(in *CelulaInput) { in.Latitud = 0 }, "La ubicación en el mapa es requerida"},
		{"sin líder", func(in *CelulaInput) { in.LiderID = 0 }, "El líder es requerido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCelulaInput()
			tc.mutate(&in)
			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.mensaje, err.Error())
		})
	}
}

func TestDiasYGeneros(t *testing.T) {
	assert.Len(t, Dias(), 7)
	assert.Equal(t, DiaLunes, Dias()[0])
	assert.Equal(t, DiaDomingo, Dias()[6])
	assert.Equal(t, []string{GeneroHombre, GeneroMujer}, Generos())
}
