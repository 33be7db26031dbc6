package sqlite

import (
	"database/sql"

	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

const (
	listColumns = "id, title, description, creation_date, priority"
	itemColumns = "id, list_id, position, title, description, creation_date, finish_date, priority"
)

type listRow struct {
	ID           string      `db:"id"`
	Title        string      `db:"title"`
	Description  string      `db:"description"`
	CreationDate sqlite.Time `db:"creation_date"`
	Priority     string      `db:"priority"`
}

type itemRow struct {
	ID           string          `db:"id"`
	ListID       sql.NullString  `db:"list_id"`
	Position     int             `db:"position"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	CreationDate sqlite.Time     `db:"creation_date"`
	FinishDate   sqlite.NullTime `db:"finish_date"`
	Priority     string          `db:"priority"`
}

func (row listRow) toList(items []model.Item) model.List {
	if items == nil {
		items = []model.Item{}
	}
	return model.List{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Items:        items,
		CreationDate: row.CreationDate.Time,
		Priority:     model.Priority(row.Priority),
	}
}

func (row itemRow) toItem() model.Item {
	return model.Item{
		ID:           row.ID,
		ListID:       row.ListID.String,
		Title:        row.Title,
		Description:  row.Description,
		CreationDate: row.CreationDate.Time,
		FinishDate:   row.FinishDate.Ptr(),
		Priority:     model.Priority(row.Priority),
	}
}
