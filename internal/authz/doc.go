// Package authz centralizes every permission decision in the console.
//
// Authorize is the single route-level guard: given the current session
// and a required role set it returns a Decision, and the caller performs
// the navigation side effect (show content, prompt for login, or show
// the unauthorized message). The entity-level predicates CanEditCelula,
// CanDeleteCelula, and CanManageUsuarios cover action-level checks.
//
// All functions are pure: they take the session and the entity
// explicitly and never consult global state, so there is exactly one
// place where each rule lives and nothing to drift.
package authz
