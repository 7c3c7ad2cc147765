package sessiontransport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/cookie"
	"github.com/dmitrymomot/authkit/core/session"
	"github.com/dmitrymomot/authkit/core/sessiontransport"
)

const (
	testSecret     = "0123456789abcdef0123456789abcdef"
	testCookieName = "__session"
)

type testData struct {
	Role string `json:"role"`
}

// memStore is an in-memory session.Store for transport tests.
type memStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]session.Session[testData]
	byToken map[string]uuid.UUID
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{
		byID:    make(map[uuid.UUID]session.Session[testData]),
		byToken: make(map[string]uuid.UUID),
	}
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*session.Session[testData], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &sess, nil
}

func (s *memStore) GetByToken(ctx context.Context, token string) (*session.Session[testData], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byToken[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	sess := s.byID[id]
	return &sess, nil
}

func (s *memStore) Save(ctx context.Context, sess *session.Session[testData]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.byID[sess.ID] = *sess
	s.byToken[sess.Token] = sess.ID
	return nil
}

func (s *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return session.ErrNotFound
	}
	delete(s.byToken, sess.Token)
	delete(s.byID, id)
	return nil
}

func (s *memStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func newTransport(t *testing.T, store *memStore, touchInterval time.Duration) *sessiontransport.Cookie[testData] {
	t.Helper()
	cookieMgr, err := cookie.New([]string{testSecret})
	require.NoError(t, err)
	mgr := session.NewManager[testData](store, time.Hour, touchInterval)
	return sessiontransport.NewCookie(mgr, cookieMgr, testCookieName, nil)
}

// issueRequest issues a session and returns a fresh request carrying its cookie.
func issueRequest(t *testing.T, transport *sessiontransport.Cookie[testData], userID uuid.UUID) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	_, err := transport.Issue(rec, r, userID)
	require.NoError(t, err)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestCookie_Issue(t *testing.T) {
	t.Parallel()

	t.Run("creates session and writes signed cookie", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		userID := uuid.New()

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		sess, err := transport.Issue(rec, r, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, sess.UserID)
		assert.Equal(t, 1, store.count())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, testCookieName, c.Name)
		assert.NotEmpty(t, c.Value)
		// Session-scoped: browser discards on close, no Max-Age set.
		assert.Zero(t, c.MaxAge)
		assert.True(t, c.HttpOnly)
	})

	t.Run("carries custom attributes", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		sess, err := transport.Issue(rec, r, uuid.New(), testData{Role: "admin"})

		require.NoError(t, err)
		assert.Equal(t, "admin", sess.Data.Role)
	})

	t.Run("nil response writer is a programming error", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		_, err := transport.Issue(nil, r, uuid.New())

		require.ErrorIs(t, err, sessiontransport.ErrNoResponseContext)
		assert.Equal(t, 0, store.count())
	})

	t.Run("store failure propagates", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		store.saveErr = errors.New("connection refused")
		transport := newTransport(t, store, time.Hour)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		_, err := transport.Issue(rec, r, uuid.New())

		require.ErrorIs(t, err, session.ErrSaveSession)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestCookie_Verify(t *testing.T) {
	t.Parallel()

	t.Run("no cookie returns ErrNoSession without side effect", func(t *testing.T) {
		t.Parallel()

		transport := newTransport(t, newMemStore(), time.Hour)
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := transport.Verify(rec, r)

		require.ErrorIs(t, err, sessiontransport.ErrNoSession)
		assert.Empty(t, rec.Header().Values("Set-Cookie"))
	})

	t.Run("empty cookie value returns ErrNoSession without side effect", func(t *testing.T) {
		t.Parallel()

		transport := newTransport(t, newMemStore(), time.Hour)
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: testCookieName, Value: ""})

		_, err := transport.Verify(rec, r)

		require.ErrorIs(t, err, sessiontransport.ErrNoSession)
		assert.Empty(t, rec.Header().Values("Set-Cookie"))
	})

	t.Run("tampered cookie clears client state", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := issueRequest(t, transport, uuid.New())

		c, err := r.Cookie(testCookieName)
		require.NoError(t, err)
		tampered := httptest.NewRequest(http.MethodGet, "/", nil)
		tampered.AddCookie(&http.Cookie{Name: testCookieName, Value: "x" + c.Value})

		rec := httptest.NewRecorder()
		_, err = transport.Verify(rec, tampered)

		require.ErrorIs(t, err, sessiontransport.ErrNoSession)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("unknown session clears client state", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := issueRequest(t, transport, uuid.New())

		// Invalidate everything server-side; the client still holds the cookie.
		store.mu.Lock()
		store.byID = map[uuid.UUID]session.Session[testData]{}
		store.byToken = map[string]uuid.UUID{}
		store.mu.Unlock()

		rec := httptest.NewRecorder()
		_, err := transport.Verify(rec, r)

		require.ErrorIs(t, err, sessiontransport.ErrNoSession)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("expired session clears client state", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := issueRequest(t, transport, uuid.New())

		// Age the stored record past its expiry.
		store.mu.Lock()
		for id, sess := range store.byID {
			sess.ExpiresAt = time.Now().Add(-time.Minute)
			store.byID[id] = sess
		}
		store.mu.Unlock()

		rec := httptest.NewRecorder()
		_, err := transport.Verify(rec, r)

		require.ErrorIs(t, err, sessiontransport.ErrNoSession)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("valid session inside touch interval has no side effect", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		userID := uuid.New()
		r := issueRequest(t, transport, userID)

		rec := httptest.NewRecorder()
		sess, err := transport.Verify(rec, r)

		require.NoError(t, err)
		assert.Equal(t, userID, sess.UserID)
		assert.False(t, sess.IsFresh())
		assert.Empty(t, rec.Header().Values("Set-Cookie"))

		// Repeated verification is stable.
		rec2 := httptest.NewRecorder()
		sess2, err := transport.Verify(rec2, r)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, sess2.ID)
		assert.Empty(t, rec2.Header().Values("Set-Cookie"))
	})

	t.Run("fresh session renews cookie exactly once", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		// Zero touch interval: every validation crosses the renewal threshold.
		transport := newTransport(t, store, 0)
		r := issueRequest(t, transport, uuid.New())

		var oldExpiry time.Time
		store.mu.Lock()
		for _, sess := range store.byID {
			oldExpiry = sess.ExpiresAt
		}
		store.mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		rec := httptest.NewRecorder()
		sess, err := transport.Verify(rec, r)

		require.NoError(t, err)
		assert.True(t, sess.IsFresh())
		assert.True(t, sess.ExpiresAt.After(oldExpiry))
		assert.Len(t, rec.Header().Values("Set-Cookie"), 1)
	})

	t.Run("renewal cookie write failure does not block identity resolution", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		cookieMgr, err := cookie.New([]string{testSecret})
		require.NoError(t, err)
		mgr := session.NewManager[testData](store, time.Hour, 0)

		// A cookie name long enough that any renewal write exceeds the size
		// limit, while reading the request cookie still works.
		hugeName := strings.Repeat("n", cookie.MaxCookieSize)
		transport := sessiontransport.NewCookie(mgr, cookieMgr, hugeName, nil)

		sess, err := mgr.Create(context.Background(), uuid.New())
		require.NoError(t, err)

		// Build the signed cookie value via a normally-named write.
		rec := httptest.NewRecorder()
		require.NoError(t, cookieMgr.SetSigned(rec, "small", sess.Token))
		signed := rec.Result().Cookies()[0].Value

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: hugeName, Value: signed})

		got, err := transport.Verify(httptest.NewRecorder(), r)

		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
	})
}

func TestCookie_Terminate(t *testing.T) {
	t.Parallel()

	t.Run("deletes session and clears cookie", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := issueRequest(t, transport, uuid.New())

		rec := httptest.NewRecorder()
		err := transport.Terminate(rec, r)

		require.NoError(t, err)
		assert.Equal(t, 0, store.count())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})

	t.Run("no session returns ErrNotAuthenticated", func(t *testing.T) {
		t.Parallel()

		transport := newTransport(t, newMemStore(), time.Hour)
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/logout", nil)

		err := transport.Terminate(rec, r)

		require.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("terminating an already-invalidated session is idempotent", func(t *testing.T) {
		t.Parallel()

		store := newMemStore()
		transport := newTransport(t, store, time.Hour)
		r := issueRequest(t, transport, uuid.New())

		require.NoError(t, transport.Terminate(httptest.NewRecorder(), r))

		// Same stale cookie again: the session is gone server-side.
		err := transport.Terminate(httptest.NewRecorder(), r)
		require.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("nil response writer is a programming error", func(t *testing.T) {
		t.Parallel()

		transport := newTransport(t, newMemStore(), time.Hour)
		r := httptest.NewRequest(http.MethodPost, "/logout", nil)

		err := transport.Terminate(nil, r)

		require.ErrorIs(t, err, sessiontransport.ErrNoResponseContext)
	})
}

func TestCookie_CookieName(t *testing.T) {
	t.Parallel()

	transport := newTransport(t, newMemStore(), time.Hour)
	assert.Equal(t, testCookieName, transport.CookieName())
}
