package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// CreateSettlement records a payment between two members.
type CreateSettlement struct {
	Settlement sqlconfig.SettlementCreate

	Created *sqlconfig.Settlement
}

func (c *CreateSettlement) ActionName() string { return "create_settlement" }

func (c *CreateSettlement) Perform(ctx context.Context, writer *storage.Writer) error {
	settlement, err := writer.Settlements.Insert(ctx, &c.Settlement)
	if err != nil {
		return err
	}
	c.Created = settlement
	return nil
}

// ReverseSettlement records a compensating settlement in the opposite
// direction. The original row is locked so two reversals cannot race.
type ReverseSettlement struct {
	SettlementID uuid.UUID

	Created *sqlconfig.Settlement
}

func (r *ReverseSettlement) ActionName() string { return "reverse_settlement" }

func (r *ReverseSettlement) Perform(ctx context.Context, writer *storage.Writer) error {
	original, err := writer.Settlements.FindByIDForUpdate(ctx, r.SettlementID)
	if err != nil {
		return err
	}
	if original.Reverses.Valid {
		return ErrCannotReverseReversal
	}

	_, err = writer.Settlements.FindReversal(ctx, r.SettlementID)
	switch {
	case err == nil:
		return ErrAlreadyReversed
	case !errors.Is(err, sqlconfig.ErrNotFound):
		return err
	}

	reversal, err := writer.Settlements.Insert(ctx, &sqlconfig.SettlementCreate{
		GroupID:    original.GroupID,
		FromMember: original.ToMember,
		ToMember:   original.FromMember,
		Amount:     original.Amount,
		Reverses:   uuid.NullUUID{UUID: original.ID, Valid: true},
	})
	if err != nil {
		return err
	}
	r.Created = reversal
	return nil
}
