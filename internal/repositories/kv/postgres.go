package kv

import "database/sql"

type PostgresRepository struct {
	sqlRepository
}

// NewPostgresRepository expects the kv table from the postgres migrations.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{sqlRepository{db: db, q: sqlQueries{
		get: `SELECT value FROM kv WHERE key = $1`,
		set: `INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		delete: `DELETE FROM kv WHERE key = $1`,
		list:   `SELECT key, value FROM kv`,
		clear:  `DELETE FROM kv`,
	}}}
}
