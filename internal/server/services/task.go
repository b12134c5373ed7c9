package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/repositories/repomanager"
)

// TaskService provides owner-scoped task operations. Toggle and Delete keep
// the repository contract: a missing or foreign task id is a silent no-op,
// indistinguishable from success.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService using repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Add creates a task owned by userID. The title is trimmed; an empty trimmed
// title is common.ErrorValidation.
func (s *TaskService) Add(ctx context.Context, userID int64, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Create(ctx, &models.Task{UserID: userID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns the user's tasks newest-created first, optionally restricted
// to titles containing the trimmed filter substring.
func (s *TaskService) List(ctx context.Context, userID int64, filter string) ([]*models.Task, error) {
	filter = strings.TrimSpace(filter)

	repo := s.repomanager.Tasks(s.db)
	result, err := repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return result, nil
}

// Toggle flips completion of the task if it belongs to userID.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID int64) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.Toggle(ctx, userID, taskID); err != nil {
		return fmt.Errorf("error toggling task: %w", err)
	}
	return nil
}

// Delete removes the task if it belongs to userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}
