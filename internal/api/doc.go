// Package api is the typed façade over the backend REST contract.
//
// Client wraps outbound HTTP calls: it attaches the bearer token when
// the session store still holds a non-expired one, applies a bounded
// timeout, logs each request with its id and duration, and maps HTTP
// failures onto the console's error taxonomy (ErrUnauthorized,
// ErrForbidden, ErrNotFound, ErrServer, wrapped network errors).
//
// The per-entity methods (usuarios.go, celulas.go, auth.go) mirror the
// backend routes one-to-one. Superseded list fetches are handled with a
// SeqGuard: responses are applied in issue order, so a stale completion
// can never overwrite a newer snapshot.
package api
