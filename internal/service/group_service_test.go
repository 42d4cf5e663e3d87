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

// -- CreateGroup tests --

func TestCreateGroup_Success(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("USD")

	tables.groups.EXPECT().Insert(mock.Anything, &sqlconfig.GroupCreate{Name: "Trip", Currency: "USD"}).Return(group, nil)
	tables.groups.EXPECT().AddMember(mock.Anything, group.ID, "alice").Return(nil)
	expectRoster(tables, group, "alice")

	created, err := svc.Group.CreateGroup(context.Background(), GroupCreate{Name: "  Trip ", Currency: "usd", Creator: "alice"})

	require.NoError(t, err)
	assert.Equal(t, group.ID, created.ID)
	assert.Equal(t, "USD", created.Currency)
	require.Len(t, created.Members, 1)
	assert.Equal(t, "alice", created.Members[0].ID)
}

func TestCreateGroup_DefaultsCurrency(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow(DefaultCurrency)

	tables.groups.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.GroupCreate) bool {
		return c.Currency == "EUR"
	})).Return(group, nil)
	tables.groups.EXPECT().AddMember(mock.Anything, group.ID, "alice").Return(nil)
	expectRoster(tables, group, "alice")

	created, err := svc.Group.CreateGroup(context.Background(), GroupCreate{Name: "Trip", Creator: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "EUR", created.Currency)
}

func TestCreateGroup_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := map[string]GroupCreate{
		"empty name":     {Name: " ", Creator: "alice"},
		"empty creator":  {Name: "Trip"},
		"long currency":  {Name: "Trip", Creator: "alice", Currency: "EURO"},
		"digit currency": {Name: "Trip", Creator: "alice", Currency: "E1R"},
	}
	for name, create := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Group.CreateGroup(context.Background(), create)
			assert.ErrorIs(t, err, ErrInvalidGroup)
		})
	}
}

// -- GetGroup / ListGroups tests --

func TestGetGroup_NotFound(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.groups.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	group, err := svc.Group.GetGroup(context.Background(), id)

	assert.Nil(t, group)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGetGroup_MembersInJoinOrder(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")
	expectRoster(tables, group, "carol", "alice", "bob")

	got, err := svc.Group.GetGroup(context.Background(), group.ID)

	require.NoError(t, err)
	ids := make([]string, len(got.Members))
	for i, member := range got.Members {
		ids[i] = member.ID
	}
	assert.Equal(t, []string{"carol", "alice", "bob"}, ids)
}

func TestPublicGroup(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")
	expectRoster(tables, group, "carol", "alice")

	got, err := svc.Group.PublicGroup(context.Background(), group.ID)

	require.NoError(t, err)
	assert.Equal(t, &PublicGroup{
		Name:        group.Name,
		Currency:    "EUR",
		MemberCount: 2,
		Members:     []string{"carol", "alice"},
	}, got)
}

func TestPublicGroup_NotFound(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.groups.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	got, err := svc.Group.PublicGroup(context.Background(), id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestListGroups(t *testing.T) {
	svc, tables := newTestService(t)
	rows := []*sqlconfig.Group{groupRow("EUR"), groupRow("GBP")}

	tables.groups.EXPECT().ListForMember(mock.Anything, "alice").Return(rows, nil)

	groups, err := svc.Group.ListGroups(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, rows[1].ID, groups[1].ID)
	assert.Equal(t, "GBP", groups[1].Currency)
}

// -- JoinGroup tests --

func TestJoinGroup_Success(t *testing.T) {
	svc, tables := newTestService(t)
	group := groupRow("EUR")

	tables.groups.EXPECT().FindByID(mock.Anything, group.ID).Return(group, nil)
	tables.groups.EXPECT().AddMember(mock.Anything, group.ID, "bob").Return(nil)
	tables.groups.EXPECT().ListMembers(mock.Anything, group.ID).Return(rosterRows(group.ID, "alice", "bob"), nil)

	joined, err := svc.Group.JoinGroup(context.Background(), group.ID, " bob ")

	require.NoError(t, err)
	assert.Len(t, joined.Members, 2)
}

func TestJoinGroup_UnknownGroup(t *testing.T) {
	svc, tables := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	tables.groups.EXPECT().FindByID(mock.Anything, id).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Group.JoinGroup(context.Background(), id, "bob")

	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestJoinGroup_EmptyMember(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Group.JoinGroup(context.Background(), uuid.Must(uuid.NewV4()), "")

	assert.ErrorIs(t, err, ErrInvalidGroup)
}
