package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fairshare-server/internal/config"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// Storage gives non-transactional read access to the tables and opens
// transaction-scoped Writers for the operator.
type Storage struct {
	DB          *sql.DB
	exec        bob.DB
	Groups      sqlconfig.IGroupTable
	Expenses    sqlconfig.IExpenseTable
	Settlements sqlconfig.ISettlementTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already opened database handle.
func NewStorageFromDB(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:          db,
		exec:        exec,
		Groups:      sqlconfig.NewGroupsTable(exec),
		Expenses:    sqlconfig.NewExpensesTable(exec),
		Settlements: sqlconfig.NewSettlementsTable(exec),
	}
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
