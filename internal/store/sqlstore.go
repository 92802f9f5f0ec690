package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

const (
	kvTable   = "kv_entries"
	bankTable = "bank_files"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv_entries (
    entry_key TEXT PRIMARY KEY,
    entry_value TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS bank_files (
    name TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    added_at BIGINT NOT NULL
)`,
}

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

// SQLStore keeps the key-value entries and bank files in SQLite or Postgres.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// Open connects to dsn and creates the tables.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName, d string
	switch driver {
	case DriverSQLite:
		drvName, d = "sqlite", dialect.SQLite
		if dsn == "" {
			dsn = "matchdrill.db"
		}
	case DriverPostgres:
		drvName, d = "pgx", dialect.Postgres
		if dsn == "" {
			dsn = "postgres://localhost:5432/matchdrill?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
		for _, p := range sqlitePragmas {
			if _, err := db.ExecContext(ctx, p); err != nil {
				db.Close()
				return nil, fmt.Errorf("%s: %w", p, err)
			}
		}
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) builder() *entsql.DialectBuilder {
	return entsql.Dialect(s.dialect)
}

// ============================================================================
// Key-value entries
// ============================================================================

// Get returns the value stored under key and whether it exists.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := s.builder().
		Select("entry_value").
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("entry_key", key)).
		Query()

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	query, args := s.builder().
		Insert(kvTable).
		Columns("entry_key", "entry_value").
		Values(key, value).
		OnConflict(
			entsql.ConflictColumns("entry_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// ============================================================================
// Bank files
// ============================================================================

// SaveBankFile stores a new bank file. A name already in use is rejected
// with ErrDuplicate.
func (s *SQLStore) SaveBankFile(ctx context.Context, f *BankFile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args := s.builder().
		Select("name").
		From(entsql.Table(bankTable)).
		Where(entsql.EQ("name", f.Name)).
		Query()
	var existing string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&existing)
	if err == nil {
		return fmt.Errorf("bank %q: %w", f.Name, ErrDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if f.AddedAt.IsZero() {
		f.AddedAt = time.Now()
	}
	query, args = s.builder().
		Insert(bankTable).
		Columns("name", "content", "added_at").
		Values(f.Name, f.Content, f.AddedAt.UnixMilli()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save bank %q: %w", f.Name, err)
	}
	return tx.Commit()
}

func (s *SQLStore) GetBankFile(ctx context.Context, name string) (*BankFile, error) {
	query, args := s.builder().
		Select("name", "content", "added_at").
		From(entsql.Table(bankTable)).
		Where(entsql.EQ("name", name)).
		Query()

	f, err := scanBankFile(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bank %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListBankFiles returns every bank file in the order it was added.
func (s *SQLStore) ListBankFiles(ctx context.Context) ([]*BankFile, error) {
	query, args := s.builder().
		Select("name", "content", "added_at").
		From(entsql.Table(bankTable)).
		OrderBy("added_at", "name").
		Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []*BankFile{}
	for rows.Next() {
		f, err := scanBankFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *SQLStore) DeleteBankFile(ctx context.Context, name string) error {
	query, args := s.builder().
		Delete(bankTable).
		Where(entsql.EQ("name", name)).
		Query()

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("bank %q: %w", name, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBankFile(row rowScanner) (*BankFile, error) {
	var f BankFile
	var addedAt int64
	if err := row.Scan(&f.Name, &f.Content, &addedAt); err != nil {
		return nil, err
	}
	f.AddedAt = time.UnixMilli(addedAt)
	return &f, nil
}
