// Package session issues and verifies the signed cookie that marks a client
// as logged in.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrWeakSecret   = errors.New("session secret too short")
)

const minSecretLen = 32

// Identity is what a valid session says about the client.
type Identity struct {
	UserID   int
	Username string
}

type Options struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// claims defines the JWT payload.
type claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// Manager signs session tokens with HS256 and moves them in and out of
// cookies.
type Manager struct {
	key    []byte
	ttl    time.Duration
	cookie string
	secure bool
	now    func() time.Time
}

func NewManager(opts Options) (*Manager, error) {
	if len(opts.Secret) < minSecretLen {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrWeakSecret, minSecretLen)
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", opts.TTL)
	}
	if opts.CookieName == "" {
		return nil, errors.New("session cookie name is empty")
	}
	return &Manager{
		key:    []byte(opts.Secret),
		ttl:    opts.TTL,
		cookie: opts.CookieName,
		secure: opts.Secure,
		now:    time.Now,
	}, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookie }

// Issue returns a signed token for id.
func (m *Manager) Issue(id Identity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   id.UserID,
		Username: id.Username,
	})
	return token.SignedString(m.key)
}

// Parse verifies raw and returns the identity it carries. Other algorithms,
// bad signatures and expired tokens all yield ErrInvalidToken.
func (m *Manager) Parse(raw string) (Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.UserID <= 0 || c.Username == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Identity{UserID: c.UserID, Username: c.Username}, nil
}

// Start writes a fresh session cookie for id.
func (m *Manager) Start(c *gin.Context, id Identity) error {
	token, err := m.Issue(id)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie, token, int(m.ttl/time.Second), "/", "", m.secure, true)
	return nil
}

// Clear expires the session cookie. It is safe to call without a session.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie, "", -1, "/", "", m.secure, true)
}

// Current returns the identity of the request's session, if any.
func (m *Manager) Current(c *gin.Context) (Identity, bool) {
	raw, err := c.Cookie(m.cookie)
	if err != nil || raw == "" {
		return Identity{}, false
	}
	id, err := m.Parse(raw)
	if err != nil {
		return Identity{}, false
	}
	return id, true
}
