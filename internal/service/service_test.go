package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

type nopTx struct{}

func (nopTx) Commit(context.Context) error   { return nil }
func (nopTx) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions directly against the mocked tables instead
// of queueing them on the operator.
type inlineProcessor struct {
	writer *storage.Writer
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

type mockTables struct {
	groups      *sqlconfig.MockIGroupTable
	expenses    *sqlconfig.MockIExpenseTable
	settlements *sqlconfig.MockISettlementTable
}

func newTestService(t *testing.T) (*Service, mockTables) {
	t.Helper()
	tables := mockTables{
		groups:      sqlconfig.NewMockIGroupTable(t),
		expenses:    sqlconfig.NewMockIExpenseTable(t),
		settlements: sqlconfig.NewMockISettlementTable(t),
	}
	store := &storage.Storage{
		Groups:      tables.groups,
		Expenses:    tables.expenses,
		Settlements: tables.settlements,
	}
	writer := storage.NewWriterFromTables(nopTx{}, tables.groups, tables.expenses, tables.settlements)

	logger := logrus.New()
	logger.Out = io.Discard
	return NewService(store, inlineProcessor{writer: writer}, logger), tables
}

func m(s string) money.Money {
	return money.MustParse(s)
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func groupRow(currency string) *sqlconfig.Group {
	return &sqlconfig.Group{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      "Trip",
		Currency:  currency,
		CreatedAt: testTime,
	}
}

func rosterRows(groupID uuid.UUID, members ...string) []*sqlconfig.GroupMember {
	rows := make([]*sqlconfig.GroupMember, len(members))
	for i, member := range members {
		rows[i] = &sqlconfig.GroupMember{
			GroupID:  groupID,
			MemberID: member,
			JoinedAt: testTime.Add(time.Duration(i) * time.Minute),
		}
	}
	return rows
}

// expectRoster makes the group and its roster available for lookups.
func expectRoster(tables mockTables, group *sqlconfig.Group, members ...string) {
	tables.groups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	tables.groups.EXPECT().ListMembers(mock.Anything, group.ID).Return(rosterRows(group.ID, members...), nil)
}
