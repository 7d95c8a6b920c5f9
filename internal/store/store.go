// Package store keeps the levels a run has left behind so they can be
// restored when the player returns.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"shadoblade/internal/gamemap"
)

// ErrLevelNotFound is returned when no level is stored for a run and depth.
var ErrLevelNotFound = errors.New("level not found")

// Storage saves and loads finished levels. A run is any string that
// separates one game's levels from another's.
type Storage interface {
	SaveLevel(run string, m *gamemap.Map) error
	LoadLevel(run string, depth int) (*gamemap.Map, error)
	DeleteRun(run string) error
	Close() error
}

// Kinds accepted by Open.
const (
	KindMemory   = "memory"
	KindJSON     = "json"
	KindPostgres = "postgres"
)

// DefaultDSN is used for postgres when none is given.
const DefaultDSN = "host=localhost user=shadoblade password=shadoblade dbname=shadoblade sslmode=disable"

// Open returns the storage of the given kind. file is the JSON store path
// and dsn the postgres connection string.
func Open(kind, file, dsn string, logger *slog.Logger) (Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch kind {
	case "", KindMemory:
		logger.Info("using in-memory level storage")
		return NewMemoryStore(), nil
	case KindJSON:
		if file == "" {
			file = "levels.json"
		}
		logger.Info("using JSON level storage", "file", file)
		return NewJSONStore(file)
	case KindPostgres:
		if dsn == "" {
			dsn = DefaultDSN
		}
		logger.Info("using PostgreSQL level storage")
		return NewPostgresStore(dsn)
	}
	return nil, fmt.Errorf("unknown storage kind %q", kind)
}

// FromEnv opens the storage named by DB_TYPE, with DB_FILE and
// DATABASE_URL supplying its location.
func FromEnv(logger *slog.Logger) (Storage, error) {
	return Open(os.Getenv("DB_TYPE"), os.Getenv("DB_FILE"), os.Getenv("DATABASE_URL"), logger)
}
