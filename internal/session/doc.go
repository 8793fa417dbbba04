// Package session holds the authenticated user's identity and token.
//
// Exactly one session is active at a time. The Store owns the full
// lifecycle: it reads the persisted state once at construction, performs
// sign-in through an injected Authenticator, and clears everything
// atomically on sign-out or when token expiry is detected.
//
// The state machine has two states only, ANONYMOUS and AUTHENTICATED.
// There is no intermediate "pending" state: the network call inside
// SignIn is synchronous from the caller's perspective.
//
// Token expiry is deliberately fail-open-to-login: an expired token is
// discarded from storage and subsequent requests go out unauthenticated,
// so the backend's 401 drives the user back to sign-in rather than the
// console crashing.
package session
