package repomanager

import (
	"context"
	"database/sql"

	"github.com/marziehyaghobi/cs50-final-project/internal/dbx"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/repositories/tasks"
	"github.com/marziehyaghobi/cs50-final-project/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook. Services hold a manager plus a *sql.DB and
// bind repositories per call.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
