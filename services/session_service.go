package services

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "session"

// Session is the per-request admin state carried in the signed cookie.
type Session struct {
	AdminID uint
}

// Authenticated reports whether an admin is logged in.
func (s *Session) Authenticated() bool {
	return s != nil && s.AdminID != 0
}

type sessionClaims struct {
	AdminID uint `json:"admin_id"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies the session cookie.
type SessionManager struct {
	secret []byte
	secure bool
}

func NewSessionManager(secret string, secure bool) *SessionManager {
	return &SessionManager{secret: []byte(secret), secure: secure}
}

// Load returns the session from the request cookie. A missing, tampered or
// otherwise unreadable cookie yields an empty session.
func (m *SessionManager) Load(c *gin.Context) *Session {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return &Session{}
	}
	sess, err := m.Decode(raw)
	if err != nil {
		return &Session{}
	}
	return sess
}

// Save writes sess to the response as a signed cookie.
func (m *SessionManager) Save(c *gin.Context, sess *Session) error {
	token, err := m.Encode(sess)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, 0, "/", "", m.secure, true)
	return nil
}

// Clear drops the entire session.
func (m *SessionManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", m.secure, true)
}

func (m *SessionManager) Encode(sess *Session) (string, error) {
	claims := sessionClaims{
		AdminID: sess.AdminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatUint(uint64(sess.AdminID), 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (m *SessionManager) Decode(raw string) (*Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{AdminID: claims.AdminID}, nil
}
