// Package services contains server-side business logic. This file implements
// UserService, which handles registration and credential verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/marziehyaghobi/cs50-final-project/internal/common"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/repositories/repomanager"
)

// dummyHash is compared against when the username does not exist, so an
// unknown user costs about as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("taskmaster-dummy"), bcrypt.DefaultCost)

// UserService provides account operations:
// - Register: validate and create users
// - Authenticate: verify credentials
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using repositories.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new user. A username or password that is empty after
// trimming whitespace is common.ErrorValidation. The password is
// bcrypt-hashed before storage. A taken username surfaces as
// common.ErrorUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrorValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the supplied password against the stored hash and
// returns the user on success. An unknown username and a wrong password both
// come back as common.ErrorUnauthorized; the caller cannot tell them apart.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison anyway
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}
