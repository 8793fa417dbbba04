// ABOUTME: Tests for the route-level authorization guard
// ABOUTME: Truth table over session presence, role membership, and empty role sets

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
)

func TestAuthorize_NoSessionAlwaysLogin(t *testing.T) {
	roleSets := [][]model.Rol{
		nil,
		{},
		{model.RolAdmin},
		{model.RolAdmin, model.RolLider, model.RolTimoteo, model.RolUsuario},
	}
	for _, roles := range roleSets {
		assert.Equal(t, DecisionRedirectLogin, Authorize(nil, roles))
	}
}

func TestAuthorize_RoleGating(t *testing.T) {
	tests := []struct {
		name     string
		rol      model.Rol
		required []model.Rol
		want     Decision
	}{
		{"lider blocked from admin route", model.RolLider, []model.Rol{model.RolAdmin}, DecisionRedirectForbidden},
		{"admin allowed on admin route", model.RolAdmin, []model.Rol{model.RolAdmin}, DecisionAllow},
		{"timoteo allowed when listed", model.RolTimoteo, []model.Rol{model.RolLider, model.RolTimoteo}, DecisionAllow},
		{"usuario blocked from leader route", model.RolUsuario, []model.Rol{model.RolLider, model.RolTimoteo}, DecisionRedirectForbidden},
		{"nil role set allows any session", model.RolUsuario, nil, DecisionAllow},
		{"empty role set allows any session", model.RolTimoteo, []model.Rol{}, DecisionAllow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &session.Session{SubjectID: 1, Rol: tt.rol}
			assert.Equal(t, tt.want, Authorize(s, tt.required))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "redirect-to-login", DecisionRedirectLogin.String())
	assert.Equal(t, "redirect-to-forbidden", DecisionRedirectForbidden.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
