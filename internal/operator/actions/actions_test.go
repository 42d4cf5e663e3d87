package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

type nopTx struct{}

func (nopTx) Commit(context.Context) error   { return nil }
func (nopTx) Rollback(context.Context) error { return nil }

type tables struct {
	groups      *sqlconfig.MockIGroupTable
	expenses    *sqlconfig.MockIExpenseTable
	settlements *sqlconfig.MockISettlementTable
}

func newTestWriter(t *testing.T) (*storage.Writer, tables) {
	t.Helper()
	tb := tables{
		groups:      sqlconfig.NewMockIGroupTable(t),
		expenses:    sqlconfig.NewMockIExpenseTable(t),
		settlements: sqlconfig.NewMockISettlementTable(t),
	}
	return storage.NewWriterFromTables(nopTx{}, tb.groups, tb.expenses, tb.settlements), tb
}

// -- Group action tests --

func TestCreateGroup_AddsCreatorAsMember(t *testing.T) {
	writer, tb := newTestWriter(t)
	group := &sqlconfig.Group{ID: uuid.Must(uuid.NewV4()), Name: "Trip", Currency: "EUR"}

	tb.groups.EXPECT().Insert(mock.Anything, &sqlconfig.GroupCreate{Name: "Trip", Currency: "EUR"}).Return(group, nil)
	tb.groups.EXPECT().AddMember(mock.Anything, group.ID, "alice").Return(nil)

	action := &CreateGroup{Name: "Trip", Currency: "EUR", Creator: "alice"}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Same(t, group, action.Group)
}

func TestJoinGroup_UnknownGroup(t *testing.T) {
	writer, tb := newTestWriter(t)
	groupID := uuid.Must(uuid.NewV4())

	tb.groups.EXPECT().FindByID(mock.Anything, groupID).Return(nil, sqlconfig.ErrNotFound)

	err := (&JoinGroup{GroupID: groupID, MemberID: "bob"}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

// -- Expense action tests --

func TestCreateExpense_WritesExpenseAndSplits(t *testing.T) {
	writer, tb := newTestWriter(t)
	groupID := uuid.Must(uuid.NewV4())
	expense := &sqlconfig.Expense{ID: uuid.Must(uuid.NewV4()), GroupID: groupID, Amount: money.MustParse("30.00"), PaidBy: "alice"}
	splits := []sqlconfig.SplitCreate{
		{MemberID: "alice", Amount: money.MustParse("15.00")},
		{MemberID: "bob", Amount: money.MustParse("15.00")},
	}
	stored := []*sqlconfig.ExpenseSplit{
		{ExpenseID: expense.ID, MemberID: "alice", Amount: money.MustParse("15.00"), Position: 0},
		{ExpenseID: expense.ID, MemberID: "bob", Amount: money.MustParse("15.00"), Position: 1},
	}

	tb.expenses.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ExpenseCreate) bool {
		return c.GroupID == groupID && c.PaidBy == "alice"
	})).Return(expense, nil)
	tb.expenses.EXPECT().InsertSplits(mock.Anything, expense.ID, splits).Return(stored, nil)

	action := &CreateExpense{
		Expense: sqlconfig.ExpenseCreate{GroupID: groupID, Amount: money.MustParse("30.00"), PaidBy: "alice"},
		Splits:  splits,
	}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Equal(t, stored, action.Created.Splits)
}

func TestCreateExpense_SplitInsertFails(t *testing.T) {
	writer, tb := newTestWriter(t)
	expense := &sqlconfig.Expense{ID: uuid.Must(uuid.NewV4())}

	tb.expenses.EXPECT().Insert(mock.Anything, mock.Anything).Return(expense, nil)
	tb.expenses.EXPECT().InsertSplits(mock.Anything, expense.ID, mock.Anything).Return(nil, errors.New("constraint"))

	action := &CreateExpense{Splits: []sqlconfig.SplitCreate{{MemberID: "a", Amount: money.Zero}}}
	err := action.Perform(context.Background(), writer)

	assert.EqualError(t, err, "constraint")
	assert.Nil(t, action.Created)
}

// -- Settlement action tests --

func settlementRow(from, to string, reverses uuid.NullUUID) *sqlconfig.Settlement {
	return &sqlconfig.Settlement{
		ID:         uuid.Must(uuid.NewV4()),
		GroupID:    uuid.Must(uuid.NewV4()),
		FromMember: from,
		ToMember:   to,
		Amount:     money.MustParse("15.00"),
		Reverses:   reverses,
		SettledAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReverseSettlement_RecordsOppositeDirection(t *testing.T) {
	writer, tb := newTestWriter(t)
	original := settlementRow("bob", "alice", uuid.NullUUID{})
	reversal := settlementRow("alice", "bob", uuid.NullUUID{UUID: original.ID, Valid: true})

	tb.settlements.EXPECT().FindByIDForUpdate(mock.Anything, original.ID).Return(original, nil)
	tb.settlements.EXPECT().FindReversal(mock.Anything, original.ID).Return(nil, sqlconfig.ErrNotFound)
	tb.settlements.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.SettlementCreate) bool {
		return c.FromMember == "alice" &&
			c.ToMember == "bob" &&
			c.GroupID == original.GroupID &&
			c.Amount.Equal(original.Amount) &&
			c.Reverses.Valid && c.Reverses.UUID == original.ID
	})).Return(reversal, nil)

	action := &ReverseSettlement{SettlementID: original.ID}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Same(t, reversal, action.Created)
}

func TestReverseSettlement_AlreadyReversed(t *testing.T) {
	writer, tb := newTestWriter(t)
	original := settlementRow("bob", "alice", uuid.NullUUID{})

	tb.settlements.EXPECT().FindByIDForUpdate(mock.Anything, original.ID).Return(original, nil)
	tb.settlements.EXPECT().FindReversal(mock.Anything, original.ID).
		Return(settlementRow("alice", "bob", uuid.NullUUID{UUID: original.ID, Valid: true}), nil)

	err := (&ReverseSettlement{SettlementID: original.ID}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrAlreadyReversed)
}

func TestReverseSettlement_ReversalOfReversal(t *testing.T) {
	writer, tb := newTestWriter(t)
	reversal := settlementRow("alice", "bob", uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true})

	tb.settlements.EXPECT().FindByIDForUpdate(mock.Anything, reversal.ID).Return(reversal, nil)

	err := (&ReverseSettlement{SettlementID: reversal.ID}).Perform(context.Background(), writer)

	assert.ErrorIs(t, err, ErrCannotReverseReversal)
}
