package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version int
	sql     string
}

// migrations must stay ordered by version, starting at 1.
// seq columns record insertion order, which is the default query order.
// Date columns hold TimeLayout text.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS lists (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	creation_date TEXT NOT NULL,
	priority      TEXT NOT NULL DEFAULT 'NORMAL'
);

CREATE TABLE IF NOT EXISTS items (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	list_id       TEXT REFERENCES lists(id),
	position      INTEGER NOT NULL DEFAULT 0,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	creation_date TEXT NOT NULL,
	finish_date   TEXT,
	priority      TEXT NOT NULL DEFAULT 'NORMAL'
);

CREATE INDEX IF NOT EXISTS idx_items_list_position ON items(list_id, position);
CREATE INDEX IF NOT EXISTS idx_items_creation_date ON items(creation_date);
CREATE INDEX IF NOT EXISTS idx_lists_creation_date ON lists(creation_date);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		// v1 databases created before dates moved to text hold unix nanoseconds.
		version: 2,
		sql: `
UPDATE lists SET creation_date = strftime('%Y-%m-%dT%H:%M:%S', (creation_date - ((creation_date % 1000000000) + 1000000000) % 1000000000) / 1000000000, 'unixepoch')
	|| '.' || printf('%09d', ((creation_date % 1000000000) + 1000000000) % 1000000000) || 'Z'
WHERE typeof(creation_date) = 'integer';

UPDATE items SET creation_date = strftime('%Y-%m-%dT%H:%M:%S', (creation_date - ((creation_date % 1000000000) + 1000000000) % 1000000000) / 1000000000, 'unixepoch')
	|| '.' || printf('%09d', ((creation_date % 1000000000) + 1000000000) % 1000000000) || 'Z'
WHERE typeof(creation_date) = 'integer';

UPDATE items SET finish_date = strftime('%Y-%m-%dT%H:%M:%S', (finish_date - ((finish_date % 1000000000) + 1000000000) % 1000000000) / 1000000000, 'unixepoch')
	|| '.' || printf('%09d', ((finish_date % 1000000000) + 1000000000) % 1000000000) || 'Z'
WHERE typeof(finish_date) = 'integer';

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	current := 0

	var tableCount int
	err := db.GetContext(ctx, &tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount > 0 {
		if err := db.GetContext(ctx, &current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}
	return nil
}
