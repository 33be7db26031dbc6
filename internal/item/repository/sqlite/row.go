package sqlite

import (
	"database/sql"

	"task-management/internal/model"
	"task-management/pkg/sqlite"
)

const itemColumns = "id, list_id, title, description, creation_date, finish_date, priority"

type itemRow struct {
	ID           string          `db:"id"`
	ListID       sql.NullString  `db:"list_id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	CreationDate sqlite.Time     `db:"creation_date"`
	FinishDate   sqlite.NullTime `db:"finish_date"`
	Priority     string          `db:"priority"`
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

func toItems(rows []itemRow) []model.Item {
	items := make([]model.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toItem()
	}
	return items
}
