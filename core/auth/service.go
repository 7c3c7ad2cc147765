package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
)

const minPasswordLength = 8

// Service orchestrates the auth actions: signup, login, logout and
// per-request identity resolution. It composes the credential store, the
// password hasher and the cookie session transport; all three are explicit
// dependencies so tests can substitute fakes.
type Service[Data any] struct {
	users    UserStore
	hasher   PasswordHasher
	sessions *sessiontransport.Cookie[Data]
	cfg      Config
	log      *slog.Logger
}

// NewService creates an auth service. A nil logger discards output.
func NewService[Data any](
	users UserStore,
	hasher PasswordHasher,
	sessions *sessiontransport.Cookie[Data],
	cfg Config,
	log *slog.Logger,
) *Service[Data] {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Service[Data]{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

// Signup validates the form fields, creates the user and issues a session.
//
// Validation failures (malformed email, short password, duplicate email)
// come back as field-keyed messages in the Result without touching the
// session layer; the first two never reach the store at all. Store failures
// other than the known unique-email violation propagate as errors — there is
// no sensible partial-success state for them.
func (s *Service[Data]) Signup(w http.ResponseWriter, r *http.Request, email, password string) (Result, error) {
	email = strings.TrimSpace(email)

	if !strings.Contains(email, "@") {
		return fieldError("email", MsgInvalidEmail), nil
	}
	if len(password) < minPasswordLength {
		return fieldError("password", MsgPasswordTooShort), nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Result{}, err
	}

	user, err := s.users.Create(r.Context(), email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return fieldError("email", MsgEmailExists), nil
		}
		return Result{}, err
	}

	if _, err := s.sessions.Issue(w, r, user.ID); err != nil {
		return Result{}, err
	}

	s.log.InfoContext(r.Context(), "user signed up", logger.UserID(user.ID))
	return redirect(s.cfg.AuthenticatedURL), nil
}

// Login verifies credentials and issues a session. Unknown email and wrong
// password produce the same generic message, keyed under "email", so the
// response never reveals whether the account exists.
func (s *Service[Data]) Login(w http.ResponseWriter, r *http.Request, email, password string) (Result, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return fieldError("email", MsgBadCredentials), nil
		}
		return Result{}, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return fieldError("email", MsgBadCredentials), nil
	}

	if _, err := s.sessions.Issue(w, r, user.ID); err != nil {
		return Result{}, err
	}

	s.log.InfoContext(r.Context(), "user logged in", logger.UserID(user.ID))
	return redirect(s.cfg.AuthenticatedURL), nil
}

// Auth dispatches to Login for ModeLogin and to Signup for anything else.
func (s *Service[Data]) Auth(w http.ResponseWriter, r *http.Request, mode, email, password string) (Result, error) {
	if mode == ModeLogin {
		return s.Login(w, r, email, password)
	}
	return s.Signup(w, r, email, password)
}

// Logout terminates the current session and navigates to the landing
// destination regardless of the terminator result: logging out without an
// active session is not a failure worth surfacing to the user.
func (s *Service[Data]) Logout(w http.ResponseWriter, r *http.Request) (Result, error) {
	if err := s.sessions.Terminate(w, r); err != nil {
		if !errors.Is(err, session.ErrNotAuthenticated) {
			return Result{}, err
		}
	}
	return redirect(s.cfg.LandingURL), nil
}

// CurrentUser resolves the request's session to its user. It returns
// (nil, nil, nil) for anonymous requests. A session whose user record has
// vanished is treated as invalid and terminated best-effort so the client
// cookie gets cleared.
func (s *Service[Data]) CurrentUser(w http.ResponseWriter, r *http.Request) (*User, *session.Session[Data], error) {
	sess, err := s.sessions.Verify(w, r)
	if err != nil {
		if errors.Is(err, sessiontransport.ErrNoSession) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	user, err := s.users.GetByID(r.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			if terr := s.sessions.Terminate(w, r); terr != nil && !errors.Is(terr, session.ErrNotAuthenticated) {
				s.log.WarnContext(r.Context(), "failed to terminate orphaned session",
					logger.Error(terr), logger.SessionID(sess.ID))
			}
			return nil, nil, nil
		}
		return nil, nil, err
	}

	return &user, &sess, nil
}

// Sessions exposes the underlying transport, e.g. for middleware wiring.
func (s *Service[Data]) Sessions() *sessiontransport.Cookie[Data] {
	return s.sessions
}
