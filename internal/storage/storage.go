// Package storage persists the fitpulse buckets (profile, history, daily
// stats, achievements, custom workouts, settings) as JSON documents in a
// single key/value table.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // required for SQLite
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var ErrNotFound = errors.New("not found")

type Storage struct {
	DB *sql.DB

	logger       *slog.Logger
	historyLimit int
	now          func() time.Time
}

type Option func(*Storage)

func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) { s.logger = l }
}

// WithHistoryLimit caps the workout history kept by CompleteWorkout.
func WithHistoryLimit(n int) Option {
	return func(s *Storage) { s.historyLimit = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *Storage) { s.now = now }
}

// DriverFor picks the database/sql driver for a connection string: libsql for
// Turso and sqld URLs, sqlite3 for local files.
func DriverFor(url string) string {
	switch {
	case strings.HasPrefix(url, "libsql://"),
		strings.HasPrefix(url, "http://"),
		strings.HasPrefix(url, "https://"),
		strings.HasPrefix(url, "ws://"),
		strings.HasPrefix(url, "wss://"):
		return "libsql"
	default:
		return "sqlite3"
	}
}

// Open connects to url and makes sure the schema exists.
func Open(ctx context.Context, url string, opts ...Option) (*Storage, error) {
	if url == "" {
		return nil, errors.New("database connection string is empty")
	}

	driver := DriverFor(url)
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db: %w", err)
	}
	if driver == "sqlite3" {
		// Keeps :memory: databases alive across the pool.
		db.SetMaxOpenConns(1)
	}

	st := New(db, opts...)
	if err := InitializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	st.logger.Debug("database opened", slog.String("driver", driver))
	return st, nil
}

// New wraps an already open database. The schema is not created.
func New(db *sql.DB, opts ...Option) *Storage {
	st := &Storage{
		DB:           db,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		historyLimit: 100,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS buckets (
            name TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// inTx runs fn in a transaction, committing when it returns nil.
func (s *Storage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
