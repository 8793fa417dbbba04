// ABOUTME: Mock handlers for the /celulas routes
// ABOUTME: Enforces the unique líder/timoteo assignment and name-based usuarioLibre

package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/rodrigoeramirez/vida-console/internal/model"
)

func (s *Server) handleListCelulas(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	celulas := make([]model.Celula, 0, len(s.celulas))
	for _, c := range s.celulas {
		celulas = append(celulas, *c)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, celulas)
}

func (s *Server) handleGetCelula(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	celula := s.findCelulaLocked(pathID(r))
	s.mu.Unlock()
	if celula == nil {
		writeError(w, http.StatusNotFound, "Célula no encontrada")
		return
	}
	writeJSON(w, http.StatusOK, celula)
}

func (s *Server) handleCreateCelula(w http.ResponseWriter, r *http.Request) {
	var in model.CelulaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lider := s.findByIDLocked(in.LiderID)
	if lider == nil {
		writeError(w, http.StatusBadRequest, "Líder no encontrado")
		return
	}
	var timoteo *model.Usuario
	if in.TimoteoID != 0 {
		if timoteo = s.findByIDLocked(in.TimoteoID); timoteo == nil {
			writeError(w, http.StatusBadRequest, "Timoteo no encontrado")
			return
		}
	}

	// One active célula per líder/timoteo
	if nombre := s.assignedNombreLocked(in.LiderID, 0); nombre != "" {
		writeError(w, http.StatusConflict, "El líder ya se encuentra asignado a la célula: "+nombre)
		return
	}
	if in.TimoteoID != 0 {
		if nombre := s.assignedNombreLocked(in.TimoteoID, 0); nombre != "" {
			writeError(w, http.StatusConflict, "El timoteo ya se encuentra asignado a la célula: "+nombre)
			return
		}
	}

	celula := &model.Celula{
		ID:             s.nextID,
		Nombre:         in.Nombre,
		Dia:            in.Dia,
		Genero:         in.Genero,
		HoraInicio:     in.HoraInicio,
		Direccion:      in.Direccion,
		Latitud:        in.Latitud,
		Longitud:       in.Longitud,
		Descripcion:    in.Descripcion,
		Telefono:       in.Telefono,
		EnlaceWhatsapp: in.EnlaceWhatsapp,
		Lider:          lider,
		Timoteo:        timoteo,
	}
	s.nextID++
	s.celulas = append(s.celulas, celula)
	writeJSON(w, http.StatusOK, celula)
}

func (s *Server) handleUpdateCelula(w http.ResponseWriter, r *http.Request) {
	var in model.CelulaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	celula := s.findCelulaLocked(pathID(r))
	if celula == nil {
		writeError(w, http.StatusNotFound, "Célula no encontrada")
		return
	}

	if in.LiderID != 0 {
		if nombre := s.assignedNombreLocked(in.LiderID, celula.ID); nombre != "" {
			writeError(w, http.StatusConflict, "El líder ya se encuentra asignado a la célula: "+nombre)
			return
		}
		if lider := s.findByIDLocked(in.LiderID); lider != nil {
			celula.Lider = lider
		}
	}
	if in.TimoteoID != 0 {
		if nombre := s.assignedNombreLocked(in.TimoteoID, celula.ID); nombre != "" {
			writeError(w, http.StatusConflict, "El timoteo ya se encuentra asignado a la célula: "+nombre)
			return
		}
		if timoteo := s.findByIDLocked(in.TimoteoID); timoteo != nil {
			celula.Timoteo = timoteo
		}
	}

	if in.Nombre != "" {
		celula.Nombre = in.Nombre
	}
	if in.Dia != "" {
		celula.Dia = in.Dia
	}
	if in.Genero != "" {
		celula.Genero = in.Genero
	}
	if in.HoraInicio != "" {
		celula.HoraInicio = in.HoraInicio
	}
	if in.Direccion != "" {
		celula.Direccion = in.Direccion
	}
	if in.Latitud != 0 || in.Longitud != 0 {
		celula.Latitud = in.Latitud
		celula.Longitud = in.Longitud
	}
	celula.Descripcion = in.Descripcion
	celula.Telefono = in.Telefono
	celula.EnlaceWhatsapp = in.EnlaceWhatsapp

	writeJSON(w, http.StatusOK, celula)
}

func (s *Server) handleDeleteCelula(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := pathID(r)
	for i, c := range s.celulas {
		if c.ID == id {
			// Deleting detaches líder and timoteo so they become free
			s.celulas = append(s.celulas[:i], s.celulas[i+1:]...)
			writeJSON(w, http.StatusOK, "Celula eliminada con exito.")
			return
		}
	}
	writeError(w, http.StatusNotFound, "Célula no encontrada")
}

func (s *Server) handleDias(w http.ResponseWriter, _ *http.Request) {
	items := make([]map[string]string, 0, len(model.Dias()))
	for _, dia := range model.Dias() {
		items = append(items, map[string]string{"nombre": dia})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGeneros(w http.ResponseWriter, _ *http.Request) {
	items := make([]map[string]string, 0, len(model.Generos()))
	for _, genero := range model.Generos() {
		items = append(items, map[string]string{"nombre": genero})
	}
	writeJSON(w, http.StatusOK, items)
}

// handleUsuarioLibre returns null when the user is free, otherwise the
// name of the célula they are assigned to. This mirrors the backend's
// name-only contract.
func (s *Server) handleUsuarioLibre(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	nombre := s.assignedNombreLocked(pathID(r), 0)
	s.mu.Unlock()

	if nombre == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, nombre)
}

// assignedNombreLocked returns the name of the célula the user leads or
// serves in, skipping excludeID. Caller holds mu.
func (s *Server) assignedNombreLocked(usuarioID, excludeID int64) string {
	for _, c := range s.celulas {
		if c.ID == excludeID {
			continue
		}
		if c.LiderID() == usuarioID || c.TimoteoID() == usuarioID {
			return c.Nombre
		}
	}
	return ""
}

// findCelulaLocked looks a célula up by id. Caller holds mu.
func (s *Server) findCelulaLocked(id int64) *model.Celula {
	for _, c := range s.celulas {
		if c.ID == id {
			return c
		}
	}
	return nil
}
