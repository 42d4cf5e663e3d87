package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/money"
)

// Expense represents an expense record together with its split rows.
type Expense struct {
	ID          uuid.UUID        `db:"id"`
	GroupID     uuid.UUID        `db:"group_id"`
	Description string           `db:"description"`
	Amount      money.Money      `db:"amount"`
	PaidBy      string           `db:"paid_by"`
	Category    string           `db:"category"`
	ReceiptURL  null.Val[string] `db:"receipt_url"`
	SpentAt     time.Time        `db:"spent_at"`
	CreatedAt   time.Time        `db:"created_at"`
	Splits      []*ExpenseSplit  `db:"-"`
}

// ExpenseSplit is one member's share of an expense.
type ExpenseSplit struct {
	ExpenseID uuid.UUID   `db:"expense_id"`
	MemberID  string      `db:"member_id"`
	Amount    money.Money `db:"amount"`
	Position  int         `db:"position"`
}

// ExpenseCreate is the input for creating a new expense. Omitted fields fall
// back to the column defaults.
type ExpenseCreate struct {
	GroupID     uuid.UUID
	Description string
	Amount      money.Money
	PaidBy      string
	Category    omit.Val[string]
	ReceiptURL  null.Val[string]
	SpentAt     omit.Val[time.Time]
}

// SplitCreate is one split row to insert for an expense.
type SplitCreate struct {
	MemberID string
	Amount   money.Money
}

// ExpenseFilter specifies filters for listing a group's expenses.
type ExpenseFilter struct {
	Limit  int
	Offset int
}

// IExpenseTable defines the interface for expense storage operations.
//
//go:generate mockery --name IExpenseTable --output mock_IExpenseTable.go
type IExpenseTable interface {
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	InsertSplits(ctx context.Context, expenseID uuid.UUID, splits []SplitCreate) ([]*ExpenseSplit, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
