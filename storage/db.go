package storage

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

// DB wraps the PostgreSQL connection used as the contract's durable
// journal.
type DB struct {
	*sqlx.DB
}

// NewDB connects to PostgreSQL and applies pending migrations.
func NewDB(dataSourceName string) (*DB, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := runMigrations(db.DB); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &DB{db}, nil
}

func runMigrations(db *sql.DB) error {
	migrations := &migrate.FileMigrationSource{
		Dir: "./storage/migrations",
	}
	if _, err := migrate.Exec(db, "postgres", migrations, migrate.Up); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
