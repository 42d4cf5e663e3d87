package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/money"
)

// Settlement represents a recorded payment between two members. A row whose
// Reverses is set compensates an earlier settlement.
type Settlement struct {
	ID         uuid.UUID     `db:"id"`
	GroupID    uuid.UUID     `db:"group_id"`
	FromMember string        `db:"from_member"`
	ToMember   string        `db:"to_member"`
	Amount     money.Money   `db:"amount"`
	Reverses   uuid.NullUUID `db:"reverses"`
	SettledAt  time.Time     `db:"settled_at"`
	CreatedAt  time.Time     `db:"created_at"`
}

// SettlementCreate is the input for recording a settlement.
type SettlementCreate struct {
	GroupID    uuid.UUID
	FromMember string
	ToMember   string
	Amount     money.Money
	Reverses   uuid.NullUUID
	SettledAt  omit.Val[time.Time]
}

// ISettlementTable defines the interface for settlement storage operations.
//
//go:generate mockery --name ISettlementTable --output mock_ISettlementTable.go
type ISettlementTable interface {
	Insert(ctx context.Context, create *SettlementCreate) (*Settlement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Settlement, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Settlement, error)
	FindReversal(ctx context.Context, id uuid.UUID) (*Settlement, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*Settlement, error)
}
