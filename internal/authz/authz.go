// ABOUTME: Route-level authorization guard returning an explicit Decision
// ABOUTME: Pure function of (session, required roles); navigation is the caller's job

package authz

import (
	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/session"
)

// Decision is the outcome of a route-level authorization check.
type Decision int

const (
	// DecisionAllow renders the protected content.
	DecisionAllow Decision = iota

	// DecisionRedirectLogin means there is no session: go sign in.
	DecisionRedirectLogin

	// DecisionRedirectForbidden means the session's role is not in the
	// required set: show the unauthorized page.
	DecisionRedirectForbidden
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-to-login"
	case DecisionRedirectForbidden:
		return "redirect-to-forbidden"
	default:
		return "unknown"
	}
}

// Authorize decides whether a session may enter a protected view.
// A nil or empty requiredRoles set means any authenticated session is
// allowed.
func Authorize(s *session.Session, requiredRoles []model.Rol) Decision {
	if s == nil {
		return DecisionRedirectLogin
	}
	if len(requiredRoles) == 0 {
		return DecisionAllow
	}
	for _, rol := range requiredRoles {
		if s.Rol == rol {
			return DecisionAllow
		}
	}
	return DecisionRedirectForbidden
}
