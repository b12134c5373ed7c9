package web

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
	"github.com/marziehyaghobi/cs50-final-project/internal/logging"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/config"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

const testSecret = "test-secret"

// memUsers is an in-memory UserProvider mirroring the service contract.
type memUsers struct {
	mu        sync.Mutex
	seq       int64
	users     map[string]*models.User
	passwords map[string]string
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*models.User{}, passwords: map[string]string{}}
}

func (m *memUsers) Register(ctx context.Context, username, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrorValidation
	}
	if _, ok := m.users[username]; ok {
		return nil, common.ErrorUsernameTaken
	}

	m.seq++
	u := &models.User{ID: m.seq, Username: username, CreatedAt: time.Now()}
	m.users[username] = u
	m.passwords[username] = password
	return u, nil
}

func (m *memUsers) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	username = strings.TrimSpace(username)
	u, ok := m.users[username]
	if !ok || m.passwords[username] != password {
		return nil, common.ErrorUnauthorized
	}
	return u, nil
}

// memTasks is an in-memory TaskProvider with owner-scoped silent no-ops.
type memTasks struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]*models.Task
}

func newMemTasks() *memTasks {
	return &memTasks{items: map[int64]*models.Task{}}
}

func (m *memTasks) Add(ctx context.Context, userID int64, title string) (*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorValidation
	}

	m.seq++
	task := &models.Task{ID: m.seq, UserID: userID, Title: title, CreatedAt: time.Now()}
	m.items[task.ID] = task
	return task, nil
}

func (m *memTasks) List(ctx context.Context, userID int64, filter string) ([]*models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.Task
	for _, task := range m.items {
		if task.UserID != userID {
			continue
		}
		if filter != "" && !strings.Contains(task.Title, filter) {
			continue
		}
		result = append(result, task)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memTasks) Toggle(ctx context.Context, userID, taskID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if task, ok := m.items[taskID]; ok && task.UserID == userID {
		task.IsDone = !task.IsDone
	}
	return nil
}

func (m *memTasks) Delete(ctx context.Context, userID, taskID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if task, ok := m.items[taskID]; ok && task.UserID == userID {
		delete(m.items, taskID)
	}
	return nil
}

func newTestServer(t *testing.T, up UserProvider, tp TaskProvider) *Server {
	t.Helper()

	cfg := &config.Config{
		EndpointAddr:            ":0",
		SecretKey:               testSecret,
		SessionValidityDuration: time.Hour,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s, err := NewServer(cfg, logger, up, tp)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return s
}
