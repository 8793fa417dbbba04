// ABOUTME: Mock handlers for the /auth/login and /usuarios routes
// ABOUTME: Implements soft delete, role listings, and email/password operations

package mockapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email string `json:"email"`
		Clave string `json:"clave"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	usuario := s.findByEmailLocked(creds.Email)
	var hash []byte
	if usuario != nil {
		hash = s.claves[usuario.ID]
	}
	s.mu.Unlock()

	if usuario == nil {
		writeError(w, http.StatusUnauthorized, "Email o clave incorrectos")
		return
	}
	if usuario.FechaBaja != nil {
		writeError(w, http.StatusForbidden, "El usuario ha sido dado de baja")
		return
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(creds.Clave)) != nil {
		writeError(w, http.StatusUnauthorized, "Email o clave incorrectos")
		return
	}

	token, err := s.issueToken(usuario)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"id":         usuario.ID,
		"nombre":     usuario.Nombre,
		"apellido":   usuario.Apellido,
		"email":      usuario.Email,
		"fotoPerfil": usuario.FotoPerfil,
		"rol":        usuario.Rol,
	})
}

func (s *Server) handleListUsuarios(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	usuarios := make([]model.Usuario, 0, len(s.usuarios))
	for _, u := range s.usuarios {
		usuarios = append(usuarios, *u)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, usuarios)
}

func (s *Server) handleGetUsuario(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	usuario := s.findByIDLocked(pathID(r))
	s.mu.Unlock()
	if usuario == nil {
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	writeJSON(w, http.StatusOK, usuario)
}

func (s *Server) handleCreateUsuario(w http.ResponseWriter, r *http.Request) {
	var in model.UsuarioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	if s.findByEmailLocked(in.Email) != nil {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "El email ya se encuentra registrado")
		return
	}
	s.mu.Unlock()

	usuario, err := s.AddUsuario(model.Usuario{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Email:    in.Email,
		Telefono: in.Telefono,
		Rol:      in.Rol,
	}, in.Clave)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not store usuario")
		return
	}
	writeJSON(w, http.StatusOK, usuario)
}

func (s *Server) handleUpdateUsuario(w http.ResponseWriter, r *http.Request) {
	var in model.UsuarioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	usuario := s.findByIDLocked(pathID(r))
	if usuario == nil {
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	usuario.Nombre = in.Nombre
	usuario.Apellido = in.Apellido
	usuario.Email = in.Email
	usuario.Telefono = in.Telefono
	if in.Rol != "" {
		usuario.Rol = in.Rol
	}
	writeJSON(w, http.StatusOK, usuario)
}

func (s *Server) handleDeleteUsuario(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	usuario := s.findByIDLocked(pathID(r))
	if usuario == nil {
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	// Soft delete: the account is marked, not removed
	now := time.Now()
	usuario.FechaBaja = &now
	writeJSON(w, http.StatusOK, "Usuario eliminado con exito.")
}

func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	items := make([]map[string]string, 0, len(model.Roles()))
	for _, rol := range model.Roles() {
		items = append(items, map[string]string{"nombre": string(rol)})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleLideres(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.usuariosByRol(model.RolLider))
}

func (s *Server) handleTimoteos(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.usuariosByRol(model.RolTimoteo))
}

func (s *Server) handleExistByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	s.mu.Lock()
	exists := s.findByEmailLocked(email) != nil
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, exists)
}

func (s *Server) handleUpdateClave(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Clave string `json:"clave"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Clave == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Clave), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not hash clave")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	usuario := s.findByIDLocked(pathID(r))
	if usuario == nil {
		writeError(w, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	s.claves[usuario.ID] = hash
	writeJSON(w, http.StatusOK, "Clave actualizada con exito.")
}

// usuariosByRol lists active users holding the given role.
func (s *Server) usuariosByRol(rol model.Rol) []model.Usuario {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Usuario, 0)
	for _, u := range s.usuarios {
		if u.Rol == rol && u.Activo() {
			result = append(result, *u)
		}
	}
	return result
}

// findByEmailLocked looks a user up by email. Caller holds mu.
func (s *Server) findByEmailLocked(email string) *model.Usuario {
	for _, u := range s.usuarios {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// findByIDLocked looks a user up by id. Caller holds mu.
func (s *Server) findByIDLocked(id int64) *model.Usuario {
	for _, u := range s.usuarios {
		if u.ID == id {
			return u
		}
	}
	return nil
}
