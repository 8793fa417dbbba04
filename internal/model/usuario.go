// ABOUTME: Usuario entity, the role enumeration, and user input validation
// ABOUTME: FechaBaja marks soft-deleted accounts; rows are never removed

package model

import (
	"regexp"
	"strings"
	"time"
)

// Rol is a user's role within the organization.
type Rol string

// The role hierarchy, from most to least privileged.
const (
	RolAdmin   Rol = "ADMIN"
	RolLider   Rol = "LIDER"
	RolTimoteo Rol = "TIMOTEO"
	RolUsuario Rol = "USUARIO"
)

// Roles returns every role in display order.
func Roles() []Rol {
	return []Rol{RolAdmin, RolLider, RolTimoteo, RolUsuario}
}

// ParseRol normalizes a role string from the wire. Unknown values are
// passed through uppercased rather than rejected, so a backend that
// grows a new role does not break the console.
func ParseRol(s string) Rol {
	switch r := Rol(strings.ToUpper(strings.TrimSpace(s))); r {
	case RolAdmin, RolLider, RolTimoteo, RolUsuario:
		return r
	default:
		return Rol(strings.ToUpper(strings.TrimSpace(s)))
	}
}

func rolValido(r Rol) bool {
	switch r {
	case RolAdmin, RolLider, RolTimoteo, RolUsuario:
		return true
	}
	return false
}

// Usuario is a member account as the backend serves it.
type Usuario struct {
	ID         int64      `json:"id"`
	Nombre     string     `json:"nombre"`
	Apellido   string     `json:"apellido"`
	Email      string     `json:"email"`
	Telefono   string     `json:"telefono"`
	Rol        Rol        `json:"rol"`
	FotoPerfil string     `json:"fotoPerfil,omitempty"`
	FechaBaja  *time.Time `json:"fechaBaja"`
}

// NombreCompleto returns "nombre apellido" for display and search.
func (u *Usuario) NombreCompleto() string {
	return u.Nombre + " " + u.Apellido
}

// Activo reports whether the account has not been dado de baja.
func (u *Usuario) Activo() bool {
	return u.FechaBaja == nil
}

// UsuarioInput is the payload for creating or updating a user.
type UsuarioInput struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Rol      Rol    `json:"rol"`
	Clave    string `json:"clave,omitempty"`
}

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	telefonoPattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validate checks the input the way the registration form does, so
// invalid payloads never reach the network. Clave is only checked when
// present: updates leave it empty and change it through a separate call.
func (in UsuarioInput) Validate() error {
	if strings.TrimSpace(in.Nombre) == "" {
		return &ValidationError{Campo: "nombre", Mensaje: "El nombre es requerido"}
	}
	if strings.TrimSpace(in.Apellido) == "" {
		return &ValidationError{Campo: "apellido", Mensaje: "El apellido es requerido"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return &ValidationError{Campo: "email", Mensaje: "El email es requerido"}
	}
	if !emailPattern.MatchString(in.Email) {
		return &ValidationError{Campo: "email", Mensaje: "El email no es válido"}
	}
	if strings.TrimSpace(in.Telefono) == "" {
		return &ValidationError{Campo: "telefono", Mensaje: "El teléfono es requerido"}
	}
	if !telefonoPattern.MatchString(in.Telefono) {
		return &ValidationError{Campo: "telefono", Mensaje: "El teléfono debe tener 10 dígitos"}
	}
	if !rolValido(in.Rol) {
		return &ValidationError{Campo: "rol", Mensaje: "El rol no es válido"}
	}
	if in.Clave != "" && len(in.Clave) < 6 {
		return &ValidationError{Campo: "clave", Mensaje: "La clave debe tener al menos 6 caracteres"}
	}
	return nil
}

// ValidationError names the first field that failed validation. The
// message is user-facing and already localized.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string {
	return e.Mensaje
}
