package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marziehyaghobi/cs50-final-project/internal/server/auth"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

const sessionCookieName = "taskmaster_session"

// SessionManager issues and validates the opaque per-browser session cookie.
// The cookie value is a signed token carrying the user id and the username
// cached for display; there is no server-side session state.
type SessionManager struct {
	secret   []byte
	validity time.Duration
}

func NewSessionManager(secret []byte, validity time.Duration) *SessionManager {
	return &SessionManager{secret: secret, validity: validity}
}

// Start replaces any prior session cookie with a fresh one for the given
// user. Overwriting the cookie discards old session state, so a re-login
// never inherits anything from the previous session.
func (m *SessionManager) Start(c *gin.Context, user *models.User) error {
	token, err := auth.GenerateToken(user.ID, user.Username, m.secret, m.validity)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(m.validity.Seconds()), "/", "", false, true)
	return nil
}

// End clears the session cookie unconditionally.
func (m *SessionManager) End(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// Current returns the claims of the logged-in user, or ok=false when the
// cookie is absent, malformed, expired or signed with another key.
func (m *SessionManager) Current(c *gin.Context) (*auth.Claims, bool) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		return nil, false
	}

	claims, err := auth.ParseToken(token, m.secret)
	if err != nil {
		return nil, false
	}

	return claims, true
}
