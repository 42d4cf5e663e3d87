package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

func settlementRow(groupID uuid.UUID, from, to, amount string) *sqlconfig.Settlement {
	return &sqlconfig.Settlement{
		ID:         uuid.Must(uuid.NewV4()),
		GroupID:    groupID,
		FromMember: from,
		ToMember:   to,
		Amount:     m(amount),
		SettledAt:  testTime,
		CreatedAt:  testTime,
	}
}

// -- RecordSettlement tests --

func TestRecordSettlement_Success(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")
	expectRoster(tables, group, "alice", "bob")
	stored := settlementRow(group.ID, "bob", "alice", "15.00")

	tables.settlements.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.SettlementCreate) bool {
		return c.FromMember == "bob" && c.ToMember == "alice" && c.Amount.Equal(m("15.00")) &&
			!c.Reverses.Valid && !c.SettledAt.IsValue()
	})).Return(stored, nil)

	settlement, err := svc.Settlement.RecordSettlement(context.Background(), SettlementCreate{
		GroupID: group.ID,
		From:    "bob",
		To:      "alice",
		Amount:  m("15.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, settlement.ID)
	assert.Nil(t, settlement.Reverses)
}

func TestRecordSettlement_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	groupID := uuid.Must(uuid.NewV4())

	cases := map[string]SettlementCreate{
		"zero amount":     {GroupID: groupID, From: "bob", To: "alice", Amount: m("0.00")},
		"negative amount": {GroupID: groupID, From: "bob", To: "alice", Amount: m("-1.00")},
		"self":            {GroupID: groupID, From: "bob", To: "bob", Amount: m("1.00")},
		"missing from":    {GroupID: groupID, To: "bob", Amount: m("1.00")},
	}
	for name, create := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Settlement.RecordSettlement(context.Background(), create)
			assert.ErrorIs(t, err, ErrInvalidSettlement)
		})
	}
}

func TestRecordSettlement_NotMember(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")
	expectRoster(tables, group, "alice", "bob")

	_, err := svc.Settlement.RecordSettlement(context.Background(), SettlementCreate{
		GroupID: group.ID,
		From:    "eve",
		To:      "alice",
		Amount:  m("5.00"),
	})

	assert.ErrorIs(t, err, ErrNotGroupMember)
}

// -- ListSettlements tests --

func TestListSettlements_IncludesReversals(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")
	original := settlementRow(group.ID, "bob", "alice", "15.00")
	reversal := settlementRow(group.ID, "alice", "bob", "15.00")
	reversal.Reverses = uuid.NullUUID{UUID: original.ID, Valid: true}

	tables.groups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	tables.settlements.EXPECT().ListByGroup(mock.Anything, group.ID).Return([]*sqlconfig.Settlement{reversal, original}, nil)

	settlements, err := svc.Settlement.ListSettlements(context.Background(), group.ID)

	require.NoError(t, err)
	require.Len(t, settlements, 2)
	require.NotNil(t, settlements[0].Reverses)
	assert.Equal(t, original.ID, *settlements[0].Reverses)
}

func TestListSettlements_UnknownGroup(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.groups.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Settlement.ListSettlements(context.Background(), id)

	assert.ErrorIs(t, err, ErrGroupNotFound)
}

// -- ReverseSettlement tests --

func TestReverseSettlement_NotFound(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.settlements.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Settlement.ReverseSettlement(context.Background(), id)

	assert.ErrorIs(t, err, ErrSettlementNotFound)
}

func TestReverseSettlement_Twice(t *testing.T) {
	svc, tables := newTestService(t)
	original := settlementRow(uuid.Must(uuid.NewV4()), "bob", "alice", "15.00")
	existing := settlementRow(original.GroupID, "alice", "bob", "15.00")

	tables.settlements.EXPECT().FindByIDForUpdate(mock.Anything, original.ID).Return(original, nil)
	tables.settlements.EXPECT().FindReversal(mock.Anything, original.ID).Return(existing, nil)

	_, err := svc.Settlement.ReverseSettlement(context.Background(), original.ID)

	assert.ErrorIs(t, err, ErrAlreadyReversed)
}

func TestReverseSettlement_Success(t *testing.T) {
	svc, tables := newTestService(t)
	original := settlementRow(uuid.Must(uuid.NewV4()), "bob", "alice", "15.00")
	reversal := settlementRow(original.GroupID, "alice", "bob", "15.00")
	reversal.Reverses = uuid.NullUUID{UUID: original.ID, Valid: true}

	tables.settlements.EXPECT().FindByIDForUpdate(mock.Anything, original.ID).Return(original, nil)
	tables.settlements.EXPECT().FindReversal(mock.Anything, original.ID).Return(nil, sqlconfig.ErrNotFound)
	tables.settlements.EXPECT().Insert(mock.Anything, mock.Anything).Return(reversal, nil)

	settlement, err := svc.Settlement.ReverseSettlement(context.Background(), original.ID)

	require.NoError(t, err)
	assert.Equal(t, "alice", settlement.From)
	assert.Equal(t, "bob", settlement.To)
	require.NotNil(t, settlement.Reverses)
	assert.Equal(t, original.ID, *settlement.Reverses)
}
