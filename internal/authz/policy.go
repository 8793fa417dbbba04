// ABOUTME: Entity-level permission predicates for células and user management
// ABOUTME: Pure functions of (session, entity); no implicit global lookups

package authz

import (
	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
)

// CanEditCelula reports whether the session may edit the given célula.
// ADMIN edits anything; a LIDER or TIMOTEO may edit only the célula they
// are assigned to (as either position).
func CanEditCelula(s *session.Session, c model.Celula) bool {
	if s == nil {
		return false
	}
	if s.Rol == model.RolAdmin {
		return true
	}
	if s.Rol != model.RolLider && s.Rol != model.RolTimoteo {
		return false
	}
	return s.SubjectID == c.LiderID() || s.SubjectID == c.TimoteoID()
}

// CanDeleteCelula reports whether the session may delete células.
// ADMIN only.
func CanDeleteCelula(s *session.Session) bool {
	return s != nil && s.Rol == model.RolAdmin
}

// CanManageUsuarios reports whether the session may enter the user
// management views. ADMIN only.
func CanManageUsuarios(s *session.Session) bool {
	return s != nil && s.Rol == model.RolAdmin
}

// CanChangeClave reports whether the session may change the password of
// the given user: one's own always, anyone's for ADMIN.
func CanChangeClave(s *session.Session, usuarioID int64) bool {
	if s == nil {
		return false
	}
	return s.Rol == model.RolAdmin || s.SubjectID == usuarioID
}
