package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"task-management/internal/list/repository"
	"task-management/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the list domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("list/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("list/repository/sqlite.%s", method)
}
