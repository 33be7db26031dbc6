package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	repo "task-management/internal/list/repository"
	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

// CreateList inserts the list and its items in one transaction.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (model.List, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	const query = `
		INSERT INTO lists (id, title, description, creation_date, priority)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query,
		id, opt.Title, opt.Description, sqlite.NewTime(opt.CreationDate), string(opt.Priority),
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	for i, it := range opt.Items {
		if _, err := r.insertItem(ctx, tx, id, i, it); err != nil {
			r.l.Errorf(ctx, "%s insert item %d: %v", r.dsn("CreateList"), i, err)
			return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
		}
	}

	list, err := r.getList(ctx, tx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("CreateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return list, nil
}

// DetailList returns the list with its items in sequence order.
// Returns zero-value List (ID == "") when not found.
func (r *implRepository) DetailList(ctx context.Context, id string) (model.List, error) {
	list, err := r.getList(ctx, r.db, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DetailList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return list, nil
}

// ListLists returns a page of lists matching the filter, each with its items, and the total match count.
func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]model.List, int, error) {
	pred := r.buildFilter(opt.Filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM lists " + pred.Where()
	if err := sqlx.GetContext(ctx, r.db, &total, countQuery, pred.Args()...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListLists"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	limit, offset := sqlite.LimitOffset(opt.Limit, opt.Offset)
	query := fmt.Sprintf("SELECT %s FROM lists %s ORDER BY seq LIMIT ? OFFSET ?", listColumns, pred.Where())
	args := append(pred.Args(), limit, offset)

	var rows []listRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	if len(rows) == 0 {
		return []model.List{}, total, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	itemsByList, err := r.itemsOfLists(ctx, r.db, ids)
	if err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("ListLists"), err)
		return nil, 0, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	lists := make([]model.List, len(rows))
	for i, row := range rows {
		lists[i] = row.toList(itemsByList[row.ID])
	}
	return lists, total, nil
}

// UpdateList replaces the list's fields and its items sequence.
// Owned items absent from opt.Items are deleted (orphan removal).
func (r *implRepository) UpdateList(ctx context.Context, opt repo.UpdateListOptions) (model.List, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	defer tx.Rollback()

	const query = `
		UPDATE lists
		SET title = ?, description = ?, creation_date = ?, priority = ?
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, query,
		opt.Title, opt.Description, sqlite.NewTime(opt.CreationDate), string(opt.Priority), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.List{}, nil
	}

	var owned []string
	if err := tx.SelectContext(ctx, &owned, "SELECT id FROM items WHERE list_id = ?", opt.ID); err != nil {
		r.l.Errorf(ctx, "%s owned items: %v", r.dsn("UpdateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	kept := make(map[string]bool, len(opt.Items))
	for i, it := range opt.Items {
		if it.ID == "" {
			if _, err := r.insertItem(ctx, tx, opt.ID, i, it); err != nil {
				r.l.Errorf(ctx, "%s insert item %d: %v", r.dsn("UpdateList"), i, err)
				return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
			}
			continue
		}
		if !ownedSet[it.ID] || kept[it.ID] {
			return model.List{}, fmt.Errorf("%w: item %s is not an owned item of list %s", repo.ErrFailedToUpdate, it.ID, opt.ID)
		}
		kept[it.ID] = true
		if err := r.updateItem(ctx, tx, opt.ID, i, it); err != nil {
			r.l.Errorf(ctx, "%s update item %s: %v", r.dsn("UpdateList"), it.ID, err)
			return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
		}
	}

	var orphans []string
	for _, id := range owned {
		if !kept[id] {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		q, args, err := sqlx.In("DELETE FROM items WHERE id IN (?)", orphans)
		if err == nil {
			_, err = tx.ExecContext(ctx, tx.Rebind(q), args...)
		}
		if err != nil {
			r.l.Errorf(ctx, "%s orphan removal: %v", r.dsn("UpdateList"), err)
			return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
		}
	}

	list, err := r.getList(ctx, tx, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("UpdateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateList"), err)
		return model.List{}, fmt.Errorf("%w: %v", repo.ErrFailedToUpdate, err)
	}
	return list, nil
}

// AppendItem adds opt at the end of the list's sequence. The existence check,
// the position lookup and the insert share one transaction.
// Returns a zero Item (ID == "") when the list does not exist.
func (r *implRepository) AppendItem(ctx context.Context, listID string, opt repo.ItemOptions) (model.Item, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	var lists int
	if err := tx.GetContext(ctx, &lists, "SELECT COUNT(*) FROM lists WHERE id = ?", listID); err != nil {
		r.l.Errorf(ctx, "%s list: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	if lists == 0 {
		return model.Item{}, nil
	}

	var next int
	const nextQuery = "SELECT COALESCE(MAX(position) + 1, 0) FROM items WHERE list_id = ?"
	if err := tx.GetContext(ctx, &next, nextQuery, listID); err != nil {
		r.l.Errorf(ctx, "%s position: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	id, err := r.insertItem(ctx, tx, listID, next, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}

	var row itemRow
	if err := tx.GetContext(ctx, &row, "SELECT "+itemColumns+" FROM items WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("AppendItem"), err)
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return row.toItem(), nil
}

// DeleteList removes the list's items, then the list.
func (r *implRepository) DeleteList(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteList"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE list_id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("DeleteList"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteList"), err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return nil
}

// getList loads one list and its items through q. Not found is a zero List.
func (r *implRepository) getList(ctx context.Context, q sqlx.QueryerContext, id string) (model.List, error) {
	var row listRow
	err := sqlx.GetContext(ctx, q, &row, "SELECT "+listColumns+" FROM lists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.List{}, nil
	}
	if err != nil {
		return model.List{}, err
	}

	itemsByList, err := r.itemsOfLists(ctx, q, []string{id})
	if err != nil {
		return model.List{}, err
	}
	return row.toList(itemsByList[id]), nil
}

// itemsOfLists groups the items of the given lists in sequence order.
func (r *implRepository) itemsOfLists(ctx context.Context, q sqlx.QueryerContext, listIDs []string) (map[string][]model.Item, error) {
	query, args, err := sqlx.In(
		"SELECT "+itemColumns+" FROM items WHERE list_id IN (?) ORDER BY list_id, position, seq",
		listIDs,
	)
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err := sqlx.SelectContext(ctx, q, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Item, len(listIDs))
	for _, row := range rows {
		grouped[row.ListID.String] = append(grouped[row.ListID.String], row.toItem())
	}
	return grouped, nil
}

// insertItem adds an owned item at position and returns its new id.
func (r *implRepository) insertItem(ctx context.Context, tx *sqlx.Tx, listID string, position int, it repo.ItemOptions) (string, error) {
	const query = `
		INSERT INTO items (id, list_id, position, title, description, creation_date, finish_date, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	id := uuid.NewString()
	_, err := tx.ExecContext(ctx, query,
		id, listID, position, it.Title, it.Description,
		sqlite.NewTime(it.CreationDate), sqlite.NewNullTime(it.FinishDate), string(it.Priority),
	)
	return id, err
}

func (r *implRepository) updateItem(ctx context.Context, tx *sqlx.Tx, listID string, position int, it repo.ItemOptions) error {
	const query = `
		UPDATE items
		SET position = ?, title = ?, description = ?, creation_date = ?, finish_date = ?, priority = ?
		WHERE id = ? AND list_id = ?`
	_, err := tx.ExecContext(ctx, query,
		position, it.Title, it.Description,
		sqlite.NewTime(it.CreationDate), sqlite.NewNullTime(it.FinishDate), string(it.Priority),
		it.ID, listID,
	)
	return err
}
