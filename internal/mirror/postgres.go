package mirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps slots in a single key/value table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens a connection with the pgx stdlib driver and
// ensures the state table exists.
func OpenPostgres(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS storefront_state (key TEXT PRIMARY KEY, value JSONB NOT NULL)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStore wraps an existing database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Read(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM storefront_state WHERE key = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return value, err
}

func (s *PostgresStore) Write(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO storefront_state (key, value) VALUES ($1, $2)
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM storefront_state WHERE key = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

// Close releases the underlying database handle.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
