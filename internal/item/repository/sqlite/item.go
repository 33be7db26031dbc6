package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	repo "task-management/internal/item/repository"
	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

// CreateItem inserts a standalone Item.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	id := uuid.NewString()
	const query = `
		INSERT INTO items (id, list_id, position, title, description, creation_date, finish_date, priority)
		VALUES (?, NULL, 0, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		id, opt.Title, opt.Description,
		sqlite.NewTime(opt.CreationDate), sqlite.NewNullTime(opt.FinishDate), string(opt.Priority),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	item, err := r.getItem(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("CreateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return item, nil
}

// DetailItem returns the item, or a zero Item when not found.
func (r *implRepository) DetailItem(ctx context.Context, id string) (model.Item, error) {
	item, err := r.getItem(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DetailItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return item, nil
}

// ListItems returns a page of items matching the filter and the total match count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	pred := r.buildFilter(opt.Filter)

	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, "SELECT COUNT(*) FROM items "+pred.Where(), pred.Args()...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	limit, offset := sqlite.LimitOffset(opt.Limit, opt.Offset)
	query := fmt.Sprintf("SELECT %s FROM items %s ORDER BY seq LIMIT ? OFFSET ?", itemColumns, pred.Where())
	args := append(pred.Args(), limit, offset)

	var rows []itemRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return toItems(rows), total, nil
}

// UpdateItem replaces the item's fields. list_id and position are left as they are.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET title = ?, description = ?, creation_date = ?, finish_date = ?, priority = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description,
		sqlite.NewTime(opt.CreationDate), sqlite.NewNullTime(opt.FinishDate), string(opt.Priority),
		opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, nil
	}

	item, err := r.getItem(ctx, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return item, nil
}

// DeleteItem removes the item. An owned item also leaves its list's sequence.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

func (r *implRepository) getItem(ctx context.Context, id string) (model.Item, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, "SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		return model.Item{}, err
	}
	return row.toItem(), nil
}
