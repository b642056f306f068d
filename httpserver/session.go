package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const sessionCookieName = "signing_session"

// Session is the per-browser state kept in a signed cookie: one-shot flash
// messages and the id of the last envelope this browser created.
type Session struct {
	Flashes        []string `json:"flashes,omitempty"`
	LastEnvelopeID string   `json:"last_envelope_id,omitempty"`
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() []string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// SessionStore reads and writes HMAC-SHA256 signed session cookies.
// The cookie is readable by the client but cannot be altered without the secret.
type SessionStore struct {
	secret []byte
	secure bool
}

// NewSessionStore creates a store signing cookies with secret. Secure marks
// the cookie as HTTPS-only.
func NewSessionStore(secret string, secure bool) *SessionStore {
	return &SessionStore{secret: []byte(secret), secure: secure}
}

// Get returns the session carried by r. A missing, malformed or forged cookie
// yields an empty session.
func (s *SessionStore) Get(r *http.Request) *Session {
	sess := &Session{}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return sess
	}

	payload, mac, ok := strings.Cut(cookie.Value, ".")
	if !ok || !hmac.Equal([]byte(mac), []byte(s.sign(payload))) {
		return sess
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return sess
	}
	if err := json.Unmarshal(data, sess); err != nil {
		return &Session{}
	}
	return sess
}

// Save writes sess to the response. It must be called before the response
// body or status is written.
func (s *SessionStore) Save(w http.ResponseWriter, sess *Session) {
	data, _ := json.Marshal(sess)
	payload := base64.RawURLEncoding.EncodeToString(data)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + s.sign(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionStore) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
