package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionName       = "reelscout_session"
	WorkspaceIDKey    = "workspace_id"
	SessionCreatedKey = "created_at"
)

var (
	ErrNoWorkspace = errors.New("no workspace in session")
)

// SessionManager ties a browser to its result workspace with a signed
// cookie. No accounts are involved.
type SessionManager struct {
	store  *sessions.CookieStore
	maxAge int
}

func NewSessionManager(secret string, maxAge time.Duration) *SessionManager {
	if secret == "" {
		secret = generateSecret()
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &SessionManager{
		store:  sessions.NewCookieStore([]byte(secret)),
		maxAge: int(maxAge.Seconds()),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// EnsureWorkspace returns the workspace ID stored in the session, creating
// and saving a new one when there is none.
func (sm *SessionManager) EnsureWorkspace(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	if id, err := sm.WorkspaceID(r); err == nil {
		return id, nil
	}

	session, _ := sm.store.Get(r, SessionName)
	id := uuid.New()
	session.Values[WorkspaceIDKey] = id.String()
	session.Values[SessionCreatedKey] = time.Now().Unix()

	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sm.maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}
	if err := session.Save(r, w); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// WorkspaceID reads the workspace ID from the session cookie.
func (sm *SessionManager) WorkspaceID(r *http.Request) (uuid.UUID, error) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return uuid.Nil, err
	}

	val, ok := session.Values[WorkspaceIDKey]
	if !ok {
		return uuid.Nil, ErrNoWorkspace
	}
	str, ok := val.(string)
	if !ok {
		return uuid.Nil, ErrNoWorkspace
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, ErrNoWorkspace
	}
	return id, nil
}

// GetSessionCreatedAt returns the time the session was created.
// Returns zero time if the session is missing or invalid.
func (sm *SessionManager) GetSessionCreatedAt(r *http.Request) time.Time {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return time.Time{}
	}

	val, ok := session.Values[SessionCreatedKey]
	if !ok {
		return time.Time{}
	}

	unix, ok := val.(int64)
	if !ok {
		return time.Time{}
	}

	return time.Unix(unix, 0)
}

func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
