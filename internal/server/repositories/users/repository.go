package users

import (
	"context"

	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
