package tasks

import (
	"context"

	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context, userID int64, filter string) ([]*models.Task, error)
	Toggle(ctx context.Context, userID, taskID int64) error
	Delete(ctx context.Context, userID, taskID int64) error
}
