package kv

import "database/sql"

type SQLiteRepository struct {
	sqlRepository
}

// NewSQLiteRepository expects the kv table from the sqlite migrations.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{sqlRepository{db: db, q: sqlQueries{
		get: `SELECT value FROM kv WHERE key = ?`,
		set: `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
		delete: `DELETE FROM kv WHERE key = ?`,
		list:   `SELECT key, value FROM kv`,
		clear:  `DELETE FROM kv`,
	}}}
}
