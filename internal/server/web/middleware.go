package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// gin context keys for the authenticated user.
const (
	ctxUserID   = "userID"
	ctxUsername = "username"
)

// requireLogin gates a route behind an authenticated session. Without a valid
// session the request is redirected to the login page and the wrapped handler
// never runs; otherwise the user's identity is stashed in the gin context.
func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := s.sessions.Current(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Next()
	}
}

// requestLogger tags every request with an id and logs one structured line
// after the handler chain completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
