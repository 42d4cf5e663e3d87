package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/split"
	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

const (
	defaultExpenseLimit = 20
	DefaultCategory     = "general"
)

// ExpenseService records expenses and their splits.
type ExpenseService struct {
	storage  *storage.Storage
	operator actionProcessor
	logger   *logrus.Logger
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{storage: store, operator: op, logger: logger}
}

// CreateExpense validates the payer and participants against the roster,
// allocates the total and stores the expense with its splits in one
// transaction.
func (s *ExpenseService) CreateExpense(ctx context.Context, create ExpenseCreate) (*Expense, error) {
	description := strings.TrimSpace(create.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidExpense)
	}
	if create.Policy == nil {
		return nil, fmt.Errorf("%w: split policy is required", ErrInvalidExpense)
	}

	_, roster, err := loadRoster(ctx, s.storage, create.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireMembers(roster, create.Payer); err != nil {
		return nil, err
	}
	if err := requireMembers(roster, create.Policy.Members()...); err != nil {
		return nil, err
	}

	allocation, err := split.Allocate(create.Total, create.Policy)
	if err != nil {
		return nil, err
	}

	total, err := reconcileTotal(create.Total, create.Policy, allocation)
	if err != nil {
		s.logger.WithError(err).WithField("groupID", create.GroupID.String()).
			Error("ExpenseService.CreateExpense.allocationMismatch")
		return nil, err
	}
	if !total.Equal(create.Total) {
		s.logger.WithFields(logrus.Fields{
			"groupID":   create.GroupID.String(),
			"requested": create.Total.String(),
			"stored":    total.String(),
		}).Info("ExpenseService.CreateExpense.totalReconciled")
	}

	category := strings.TrimSpace(create.Category)
	if category == "" {
		category = DefaultCategory
	}

	expenseCreate := sqlconfig.ExpenseCreate{
		GroupID:     create.GroupID,
		Description: description,
		Amount:      total,
		PaidBy:      create.Payer,
		Category:    omit.From(category),
		ReceiptURL:  null.FromPtr(create.ReceiptURL),
	}
	if !create.SpentAt.IsZero() {
		expenseCreate.SpentAt = omit.From(create.SpentAt)
	}

	splits := make([]sqlconfig.SplitCreate, len(allocation))
	for i, portion := range allocation {
		splits[i] = sqlconfig.SplitCreate{MemberID: portion.Member, Amount: portion.Amount}
	}

	action := &actions.CreateExpense{Expense: expenseCreate, Splits: splits}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	expense := expenseFromStorage(action.Created)
	return &expense, nil
}

// ListExpenses returns a page of a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID uuid.UUID, cursor *ExpenseCursor) ([]Expense, *ExpenseCursor, error) {
	if _, err := s.storage.Groups.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, nil, ErrGroupNotFound
		}
		return nil, nil, err
	}

	limit := defaultExpenseLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	rows, err := s.storage.Expenses.ListByGroup(ctx, groupID, &sqlconfig.ExpenseFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	var nextCursor *ExpenseCursor
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = &ExpenseCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	expenses := make([]Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	return expenses, nextCursor, nil
}

// DeleteExpense removes an expense and its splits.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	err := s.operator.Process(ctx, &actions.DeleteExpense{ExpenseID: id})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrExpenseNotFound
	}
	return err
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	expense := Expense{
		ID:          row.ID,
		GroupID:     row.GroupID,
		Description: row.Description,
		Total:       row.Amount,
		Payer:       row.PaidBy,
		Category:    row.Category,
		ReceiptURL:  row.ReceiptURL.Ptr(),
		SpentAt:     row.SpentAt,
		CreatedAt:   row.CreatedAt,
		Splits:      make([]Split, len(row.Splits)),
	}
	for i, s := range row.Splits {
		expense.Splits[i] = Split{Member: s.MemberID, Amount: s.Amount}
	}
	return expense
}

// reconcileTotal returns the total to store for an allocation. A custom split
// may be up to a cent off the stated total; the splits are what members owe, so
// the stored total follows them. Any other difference is an error.
func reconcileTotal(requested money.Money, policy split.Policy, allocation split.Allocation) (money.Money, error) {
	total := allocation.Total()
	if total.Equal(requested) {
		return total, nil
	}
	if policy.Kind() == split.KindCustom && !total.Sub(requested).Abs().GreaterThan(split.CustomTolerance) {
		return total, nil
	}
	return money.Money{}, fmt.Errorf("%w: %s split sums to %s, total is %s",
		ErrAllocationMismatch, policy.Kind(), total, requested)
}
