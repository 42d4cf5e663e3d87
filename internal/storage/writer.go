package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// Committer is the part of a transaction a Writer needs to finish it.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables inside a single database transaction.
type Writer struct {
	tx          Committer
	Groups      sqlconfig.IGroupTable
	Expenses    sqlconfig.IExpenseTable
	Settlements sqlconfig.ISettlementTable
}

func NewWriter(tx bob.Tx) *Writer {
	return NewWriterFromTables(
		tx,
		sqlconfig.NewGroupsTable(tx),
		sqlconfig.NewExpensesTable(tx),
		sqlconfig.NewSettlementsTable(tx),
	)
}

// NewWriterFromTables builds a Writer from explicit parts, for tests.
func NewWriterFromTables(
	tx Committer,
	groups sqlconfig.IGroupTable,
	expenses sqlconfig.IExpenseTable,
	settlements sqlconfig.ISettlementTable,
) *Writer {
	return &Writer{
		tx:          tx,
		Groups:      groups,
		Expenses:    expenses,
		Settlements: settlements,
	}
}

// Commit and Rollback run on a fresh context so a cancelled request can still
// release its transaction.
func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
