// Package tasks provides the PostgreSQL-backed repository for task rows.
// Every statement is scoped by the owning user id.
package tasks

import (
	"context"
	"fmt"

	"github.com/marziehyaghobi/cs50-final-project/internal/dbx"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a task owned by task.UserID with is_done=false and
// created_at set by the database.
func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (user_id, title)
         VALUES ($1, $2)
		 RETURNING id, is_done, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title).Scan(&task.ID, &task.IsDone, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

// List returns the user's tasks newest-created first. A non-empty filter
// restricts the result to titles containing it as a substring; matching uses
// LIKE, so case sensitivity follows the database's collation.
func (r *PostgresRepository) List(ctx context.Context, userID int64, filter string) ([]*models.Task, error) {

	query := `SELECT id, user_id, title, is_done, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `
	args := []any{userID}

	if filter != "" {
		query = `SELECT id, user_id, title, is_done, created_at FROM tasks
		 WHERE user_id = $1 AND title LIKE '%' || $2 || '%'
		 ORDER BY created_at DESC, id DESC
		 `
		args = append(args, filter)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(&item.ID, &item.UserID, &item.Title, &item.IsDone, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Toggle flips is_done on the task if it exists and belongs to userID.
// A missing or foreign task id affects zero rows and is not an error, so a
// caller probing ids cannot tell the two apart.
func (r *PostgresRepository) Toggle(ctx context.Context, userID, taskID int64) error {

	query := `UPDATE tasks SET is_done = NOT is_done
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, taskID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the task if it exists and belongs to userID. Same silent
// no-op contract as Toggle.
func (r *PostgresRepository) Delete(ctx context.Context, userID, taskID int64) error {

	query := `DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, taskID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
