// Package web serves the browser-facing HTTP surface: registration, login and
// the task list. Handlers convert expected failures into a flash notice plus a
// redirect; rendering is a thin pass over the embedded templates.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marziehyaghobi/cs50-final-project/internal/logging"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/config"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// UserProvider is the slice of the user service the handlers need.
type UserProvider interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// TaskProvider is the slice of the task service the handlers need.
type TaskProvider interface {
	Add(ctx context.Context, userID int64, title string) (*models.Task, error)
	List(ctx context.Context, userID int64, filter string) ([]*models.Task, error)
	Toggle(ctx context.Context, userID, taskID int64) error
	Delete(ctx context.Context, userID, taskID int64) error
}

type Server struct {
	address  string
	engine   *gin.Engine
	logger   logging.Logger
	users    UserProvider
	tasks    TaskProvider
	sessions *SessionManager
}

// NewServer wires the gin engine, templates, middleware and routes.
func NewServer(cfg *config.Config, l logging.Logger, up UserProvider, tp TaskProvider) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		address:  cfg.EndpointAddr,
		logger:   l.With("module", "web_server"),
		users:    up,
		tasks:    tp,
		sessions: NewSessionManager([]byte(cfg.SecretKey), cfg.SessionValidityDuration),
	}

	engine := gin.New()
	engine.SetHTMLTemplate(tmpl)
	engine.Use(gin.Recovery(), s.requestLogger())
	s.registerRoutes(engine)
	s.engine = engine

	return s, nil
}

func (s *Server) registerRoutes(e *gin.Engine) {
	e.GET("/register", s.registerForm)
	e.POST("/register", s.register)
	e.GET("/login", s.loginForm)
	e.POST("/login", s.login)
	e.GET("/logout", s.logout)

	authed := e.Group("/", s.requireLogin())
	authed.GET("", s.index)
	authed.POST("task", s.addTask)
	authed.POST("task/:id/toggle", s.toggleTask)
	authed.POST("task/:id/delete", s.deleteTask)
}

// Handler exposes the configured engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
