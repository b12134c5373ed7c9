package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
)

func (s *Server) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Flash": popFlash(c)})
}

func (s *Server) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := s.users.Register(c.Request.Context(), username, password)
	switch {
	case err == nil:
		setFlash(c, "success", "Registration complete! Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, common.ErrorValidation):
		setFlash(c, "error", "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/register")
	case errors.Is(err, common.ErrorUsernameTaken):
		setFlash(c, "error", "That username is already taken.")
		c.Redirect(http.StatusSeeOther, "/register")
	default:
		// Raw store errors stay in the log, never in the browser.
		s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		setFlash(c, "error", "Unexpected error, please try again.")
		c.Redirect(http.StatusSeeOther, "/register")
	}
}

func (s *Server) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": popFlash(c)})
}

func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := s.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		}
		// Bad username and bad password share one message.
		setFlash(c, "error", "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := s.sessions.Start(c, user); err != nil {
		s.logger.Error(c.Request.Context(), "session start failed", "error", err.Error())
		setFlash(c, "error", "Unexpected error, please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) logout(c *gin.Context) {
	s.sessions.End(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) index(c *gin.Context) {
	userID := c.GetInt64(ctxUserID)
	q := strings.TrimSpace(c.Query("q"))

	tasks, err := s.tasks.List(c.Request.Context(), userID, q)
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing tasks failed", "error", err.Error())
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Tasks":    tasks,
		"Query":    q,
		"Username": c.GetString(ctxUsername),
		"Flash":    popFlash(c),
	})
}

func (s *Server) addTask(c *gin.Context) {
	userID := c.GetInt64(ctxUserID)
	title := c.PostForm("title")

	_, err := s.tasks.Add(c.Request.Context(), userID, title)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorValidation):
		setFlash(c, "error", "Task title is required.")
	default:
		s.logger.Error(c.Request.Context(), "adding task failed", "error", err.Error())
		setFlash(c, "error", "Unexpected error, please try again.")
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// taskID parses the :id path parameter. A non-numeric id maps to 0, which no
// task row carries, so the downstream statement is a guaranteed no-op.
func taskID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (s *Server) toggleTask(c *gin.Context) {
	userID := c.GetInt64(ctxUserID)

	// Missing or foreign ids are silent no-ops; the redirect is the same
	// either way.
	if err := s.tasks.Toggle(c.Request.Context(), userID, taskID(c)); err != nil {
		s.logger.Error(c.Request.Context(), "toggling task failed", "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) deleteTask(c *gin.Context) {
	userID := c.GetInt64(ctxUserID)

	if err := s.tasks.Delete(c.Request.Context(), userID, taskID(c)); err != nil {
		s.logger.Error(c.Request.Context(), "deleting task failed", "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/")
}
