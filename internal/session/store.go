// ABOUTME: Session store owning sign-in, sign-out, and expiry detection
// ABOUTME: Persists the session as key-value fields in the local state store

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/rodrigoeramirez/vida-console/internal/model"
	"github.com/rodrigoeramirez/vida-console/internal/store"
)

// LoginResult is what the authentication collaborator returns on a
// successful login: the bearer token plus the derived profile fields.
type LoginResult struct {
	Token      string
	ID         int64
	Nombre     string
	Apellido   string
	Email      string
	FotoPerfil string
	Rol        model.Rol
}

// Authenticator performs the backend login call. Implementations must
// return ErrInvalidCredentials for a 401 and ErrCuentaBaja for a 403.
type Authenticator interface {
	Login(ctx context.Context, email, clave string) (*LoginResult, error)
}

// Persisted session field keys.
const (
	fieldToken      = "token"
	fieldSubjectID  = "id"
	fieldNombre     = "nombre"
	fieldApellido   = "apellido"
	fieldEmail      = "email"
	fieldRol        = "rol"
	fieldFotoPerfil = "fotoPerfil"
)

// Store holds the single active session. All access goes through the
// mutex so an interleaved reader never observes a half-written session.
type Store struct {
	mu     sync.Mutex
	auth   Authenticator
	state  store.Store
	logger *slog.Logger
	now    func() time.Time

	current *Session
}

// NewStore creates a session store, reading the persisted session once.
// A corrupt or unreadable persisted session is discarded rather than
// failing startup: the user simply has to sign in again.
func NewStore(ctx context.Context, auth Authenticator, state store.Store) *Store {
	s := &Store{
		auth:   auth,
		state:  state,
		logger: slog.Default().With("component", "session"),
		now:    time.Now,
	}
	s.restore(ctx)
	return s
}

// restore loads the persisted session fields, if any.
func (s *Store) restore(ctx context.Context) {
	fields, err := s.state.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("discarding unreadable persisted session", "error", err)
		}
		return
	}

	token := fields[fieldToken]
	if token == "" {
		return
	}
	expiry, err := tokenExpiry(token)
	if err != nil {
		s.logger.Warn("discarding persisted session with undecodable token", "error", err)
		_ = s.state.ClearSession(ctx)
		return
	}

	id, _ := strconv.ParseInt(fields[fieldSubjectID], 10, 64)
	s.current = &Session{
		SubjectID:   id,
		Nombre:      fields[fieldNombre],
		Apellido:    fields[fieldApellido],
		Email:       fields[fieldEmail],
		Rol:         model.Rol(fields[fieldRol]),
		FotoPerfil:  fields[fieldFotoPerfil],
		Token:       token,
		TokenExpiry: expiry,
	}
}

// SignIn authenticates with the backend and, on success, persists the
// session and transitions to AUTHENTICATED.
func (s *Store) SignIn(ctx context.Context, email, clave string) (*Session, error) {
	result, err := s.auth.Login(ctx, email, clave)
	if err != nil {
		return nil, err
	}

	expiry, err := tokenExpiry(result.Token)
	if err != nil {
		return nil, fmt.Errorf("login returned an undecodable token: %w", err)
	}

	sess := &Session{
		SubjectID:   result.ID,
		Nombre:      result.Nombre,
		Apellido:    result.Apellido,
		Email:       result.Email,
		Rol:         result.Rol,
		FotoPerfil:  result.FotoPerfil,
		Token:       result.Token,
		TokenExpiry: expiry,
	}

	fields := map[string]string{
		fieldToken:      sess.Token,
		fieldSubjectID:  strconv.FormatInt(sess.SubjectID, 10),
		fieldNombre:     sess.Nombre,
		fieldApellido:   sess.Apellido,
		fieldEmail:      sess.Email,
		fieldRol:        string(sess.Rol),
		fieldFotoPerfil: sess.FotoPerfil,
	}
	if err := s.state.SaveSession(ctx, fields); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("signed in", "email", sess.Email, "rol", sess.Rol)
	return sess, nil
}

// SignOut clears the persisted session atomically and transitions to
// ANONYMOUS. Navigation is the caller's responsibility.
func (s *Store) SignOut(ctx context.Context) error {
	if err := s.state.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.logger.Info("signed out")
	return nil
}

// Current returns the active session, or nil when anonymous.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsExpired reports whether the current session's token has expired.
// An anonymous store is not "expired", it is simply signed out.
func (s *Store) IsExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil && s.current.Expired(s.now())
}

// BearerToken returns the token to attach to an outbound request.
// When the token has expired it is discarded from storage and the
// request proceeds unauthenticated; the backend's 401 then drives the
// re-login flow.
func (s *Store) BearerToken(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", false
	}
	if s.current.Expired(s.now()) {
		s.logger.Warn("token expired, clearing session")
		if err := s.state.ClearSession(ctx); err != nil {
			s.logger.Error("clearing expired session", "error", err)
		}
		s.current = nil
		return "", false
	}
	return s.current.Token, true
}
