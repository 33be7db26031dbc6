package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"task-management/internal/item/repository"
	"task-management/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the item domain.
// db must be the handle the list repository uses.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlite.%s", method)
}
