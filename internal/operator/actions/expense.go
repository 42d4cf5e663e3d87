package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// CreateExpense writes an expense and all of its split rows together.
type CreateExpense struct {
	Expense sqlconfig.ExpenseCreate
	Splits  []sqlconfig.SplitCreate

	Created *sqlconfig.Expense
}

func (c *CreateExpense) ActionName() string { return "create_expense" }

func (c *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	expense, err := writer.Expenses.Insert(ctx, &c.Expense)
	if err != nil {
		return err
	}

	splits, err := writer.Expenses.InsertSplits(ctx, expense.ID, c.Splits)
	if err != nil {
		return err
	}

	expense.Splits = splits
	c.Created = expense
	return nil
}

// DeleteExpense removes an expense together with its splits.
type DeleteExpense struct {
	ExpenseID uuid.UUID
}

func (d *DeleteExpense) ActionName() string { return "delete_expense" }

func (d *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Expenses.Delete(ctx, d.ExpenseID)
}
