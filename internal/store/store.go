package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Driver names the SQL backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

func ParseDriver(s string) (Driver, error) {
	switch s {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "pg", "pgx":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported store driver %q", s)
	}
}

// BankFile is a stored bank source text.
type BankFile struct {
	Name    string
	Content string
	AddedAt time.Time
}

// Store is the persistence boundary: the ledger's key-value entries and the
// bank file list.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error

	SaveBankFile(ctx context.Context, f *BankFile) error
	GetBankFile(ctx context.Context, name string) (*BankFile, error)
	ListBankFiles(ctx context.Context) ([]*BankFile, error)
	DeleteBankFile(ctx context.Context, name string) error

	Close() error
}

var _ Store = (*SQLStore)(nil)
