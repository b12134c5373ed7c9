package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "taskmaster_flash"

// Flash is a one-time notice queued for the next rendered page.
// Kind is "success" or "error" and only steers styling.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func encodeFlash(f *Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeFlash(value string) (*Flash, error) {
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	f := &Flash{}
	if err := json.Unmarshal(b, f); err != nil {
		return nil, err
	}
	return f, nil
}

// setFlash queues a notice for the next rendered response.
func setFlash(c *gin.Context, kind, message string) {
	value, err := encodeFlash(&Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, value, 300, "/", "", false, true)
}

// popFlash reads and clears the queued notice, if any. A garbled cookie is
// dropped silently.
func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	f, err := decodeFlash(value)
	if err != nil {
		return nil
	}
	return f
}
