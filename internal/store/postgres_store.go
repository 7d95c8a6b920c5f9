package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"shadoblade/internal/gamemap"
)

// PostgresStore keeps levels in a PostgreSQL table, one row per run and
// depth.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to dsn and creates the schema if missing.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS levels (
	run TEXT NOT NULL,
	depth INTEGER NOT NULL,
	name TEXT NOT NULL,
	data JSONB NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
	PRIMARY KEY (run, depth)
);
`

func (s *PostgresStore) initSchema() error {
	_, err := s.db.Exec(schema)
	return err
}

const upsertLevel = `
INSERT INTO levels (run, depth, name, data)
VALUES ($1, $2, $3, $4)
ON CONFLICT (run, depth)
DO UPDATE SET name = $3, data = $4, updated_at = NOW()
`

func (s *PostgresStore) SaveLevel(run string, m *gamemap.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode level %d: %w", m.Depth, err)
	}
	if _, err := s.db.Exec(upsertLevel, run, m.Depth, m.Name, string(data)); err != nil {
		return fmt.Errorf("save level %d: %w", m.Depth, err)
	}
	return nil
}

func (s *PostgresStore) LoadLevel(run string, depth int) (*gamemap.Map, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM levels WHERE run = $1 AND depth = $2`, run, depth).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLevelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load level %d: %w", depth, err)
	}
	m := &gamemap.Map{}
	if err := json.Unmarshal([]byte(data), m); err != nil {
		return nil, fmt.Errorf("decode level %d: %w", depth, err)
	}
	return m, nil
}

func (s *PostgresStore) DeleteRun(run string) error {
	if _, err := s.db.Exec(`DELETE FROM levels WHERE run = $1`, run); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
