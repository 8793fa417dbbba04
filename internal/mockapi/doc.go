// Package mockapi is an in-memory implementation of the backend REST
// contract, used for local development and for exercising the console
// end to end in tests without the real backend.
//
// It honors the same semantics the console depends on: JWT bearer
// authentication with 401 on missing or expired tokens, 403 on login
// for deactivated accounts, soft-deleted users, the unique
// líder/timoteo assignment constraint, and the name-returning
// usuarioLibre availability check.
package mockapi
