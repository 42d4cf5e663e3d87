package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Group represents a group record.
type Group struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Currency  string    `db:"currency"`
	CreatedAt time.Time `db:"created_at"`
}

// GroupCreate is the input for creating a new group.
type GroupCreate struct {
	Name     string
	Currency string
}

// GroupMember represents a row of a group's membership roster.
type GroupMember struct {
	GroupID  uuid.UUID `db:"group_id"`
	MemberID string    `db:"member_id"`
	JoinedAt time.Time `db:"joined_at"`
}

// IGroupTable defines the interface for group and roster storage operations.
//
//go:generate mockery --name IGroupTable --output mock_IGroupTable.go
type IGroupTable interface {
	Insert(ctx context.Context, create *GroupCreate) (*Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	ListForMember(ctx context.Context, memberID string) ([]*Group, error)
	AddMember(ctx context.Context, groupID uuid.UUID, memberID string) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]*GroupMember, error)
}
