// ABOUTME: Célula entity, the day and gender enumerations, and input validation
// ABOUTME: A célula has exactly one líder and at most one timoteo

package model

import (
	"regexp"
	"strings"
)

// Weekdays as the backend names them.
const (
	DiaLunes     = "LUNES"
	DiaMartes    = "MARTES"
	DiaMiercoles = "MIERCOLES"
	DiaJueves    = "JUEVES"
	DiaViernes   = "VIERNES"
	DiaSabado    = "SABADO"
	DiaDomingo   = "DOMINGO"
)

// Dias returns the weekdays in calendar order.
func Dias() []string {
	return []string{
		DiaLunes, DiaMartes, DiaMiercoles, DiaJueves,
		DiaViernes, DiaSabado, DiaDomingo,
	}
}

// Audience genders for a célula.
const (
	GeneroHombre = "HOMBRE"
	GeneroMujer  = "MUJER"
)

// Generos returns the gender enumeration.
func Generos() []string {
	return []string{GeneroHombre, GeneroMujer}
}

// Celula is a weekly small-group meeting as the backend serves it.
// Timoteo is nil when the célula has no assistant leader.
type Celula struct {
	ID             int64    `json:"id"`
	Nombre         string   `json:"nombre"`
	Dia            string   `json:"dia"`
	Genero         string   `json:"genero"`
	HoraInicio     string   `json:"horaInicio"` // "HH:MM:SS"
	Direccion      string   `json:"direccion"`
	Latitud        float64  `json:"latitud"`
	Longitud       float64  `json:"longitud"`
	Descripcion    string   `json:"descripcion,omitempty"`
	Telefono       string   `json:"telefono,omitempty"`
	EnlaceWhatsapp string   `json:"enlaceWhatsapp,omitempty"`
	QrWhatsapp     string   `json:"qrWhatsapp,omitempty"`
	Lider          *Usuario `json:"lider"`
	Timoteo        *Usuario `json:"timoteo"`
}

// Hora returns the start time truncated to "HH:MM" for display and
// window filtering. Times shorter than five characters come back as is.
func (c *Celula) Hora() string {
	if len(c.HoraInicio) < 5 {
		return c.HoraInicio
	}
	return c.HoraInicio[:5]
}

// LiderID returns the líder's id, or 0 when unset.
func (c *Celula) LiderID() int64 {
	if c.Lider == nil {
		return 0
	}
	return c.Lider.ID
}

// TimoteoID returns the timoteo's id, or 0 when there is none.
func (c *Celula) TimoteoID() int64 {
	if c.Timoteo == nil {
		return 0
	}
	return c.Timoteo.ID
}

// CelulaInput is the payload for creating or updating a célula. Líder
// and timoteo travel as ids; the backend resolves them to users.
type CelulaInput struct {
	Nombre         string  `json:"nombre"`
	Dia            string  `json:"dia"`
	Genero         string  `json:"genero"`
	HoraInicio     string  `json:"horaInicio"`
	Direccion      string  `json:"direccion"`
	Latitud        float64 `json:"latitud"`
	Longitud       float64 `json:"longitud"`
	Descripcion    string  `json:"descripcion,omitempty"`
	Telefono       string  `json:"telefono,omitempty"`
	EnlaceWhatsapp string  `json:"enlaceWhatsapp,omitempty"`
	LiderID        int64   `json:"liderId"`
	TimoteoID      int64   `json:"timoteoId,omitempty"`
}

var horaPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// Validate checks the input the way the creation form does.
func (in CelulaInput) Validate() error {
	if strings.TrimSpace(in.Nombre) == "" {
		return &ValidationError{Campo: "nombre", Mensaje: "El nombre es requerido"}
	}
	if !diaValido(in.Dia) {
		return &ValidationError{Campo: "dia", Mensaje: "El día no es válido"}
	}
	if in.Genero != GeneroHombre && in.Genero != GeneroMujer {
		return &ValidationError{Campo: "genero", Mensaje: "El género no es válido"}
	}
	if !horaPattern.MatchString(in.HoraInicio) {
		return &ValidationError{Campo: "horaInicio", Mensaje: "La hora de inicio no es válida"}
	}
	if strings.TrimSpace(in.Direccion) == "" {
		return &ValidationError{Campo: "direccion", Mensaje: "La dirección es requerida"}
	}
	if in.Latitud == 0 || in.Longitud == 0 {
		return &ValidationError{Campo: "ubicacion", Mensaje: "La ubicación en el mapa es requerida"}
	}
	if in.LiderID == 0 {
		return &ValidationError{Campo: "lider", Mensaje: "El líder es requerido"}
	}
	return nil
}

func diaValido(dia string) bool {
	for _, d := range Dias() {
		if d == dia {
			return true
		}
	}
	return false
}
