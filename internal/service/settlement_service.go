package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/storage"
	"github.com/carson-networks/fairshare-server/internal/storage/sqlconfig"
)

// SettlementService records repayments between members.
type SettlementService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(store *storage.Storage, op actionProcessor) *SettlementService {
	return &SettlementService{storage: store, operator: op}
}

// RecordSettlement stores a payment of Amount from From to To.
func (s *SettlementService) RecordSettlement(ctx context.Context, create SettlementCreate) (*Settlement, error) {
	from := strings.TrimSpace(create.From)
	to := strings.TrimSpace(create.To)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidSettlement)
	}
	if !create.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidSettlement, create.Amount)
	}
	if from == to {
		return nil, fmt.Errorf("%w: a member cannot settle with themselves", ErrInvalidSettlement)
	}

	_, roster, err := loadRoster(ctx, s.storage, create.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireMembers(roster, from, to); err != nil {
		return nil, err
	}

	settlementCreate := sqlconfig.SettlementCreate{
		GroupID:    create.GroupID,
		FromMember: from,
		ToMember:   to,
		Amount:     create.Amount,
	}
	if !create.SettledAt.IsZero() {
		settlementCreate.SettledAt = omit.From(create.SettledAt)
	}

	action := &actions.CreateSettlement{Settlement: settlementCreate}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	settlement := settlementFromStorage(action.Created)
	return &settlement, nil
}

// ListSettlements returns a group's settlements, newest first, reversals included.
func (s *SettlementService) ListSettlements(ctx context.Context, groupID uuid.UUID) ([]Settlement, error) {
	if _, err := s.storage.Groups.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	rows, err := s.storage.Settlements.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	settlements := make([]Settlement, len(rows))
	for i, row := range rows {
		settlements[i] = settlementFromStorage(row)
	}
	return settlements, nil
}

// ReverseSettlement cancels a settlement by recording the same amount in the
// opposite direction. A settlement can be reversed once; reversals cannot be
// reversed.
func (s *SettlementService) ReverseSettlement(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	action := &actions.ReverseSettlement{SettlementID: id}
	err := s.operator.Process(ctx, action)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrSettlementNotFound
	}
	if err != nil {
		return nil, err
	}

	settlement := settlementFromStorage(action.Created)
	return &settlement, nil
}

func settlementFromStorage(row *sqlconfig.Settlement) Settlement {
	settlement := Settlement{
		ID:        row.ID,
		GroupID:   row.GroupID,
		From:      row.FromMember,
		To:        row.ToMember,
		Amount:    row.Amount,
		SettledAt: row.SettledAt,
		CreatedAt: row.CreatedAt,
	}
	if row.Reverses.Valid {
		reverses := row.Reverses.UUID
		settlement.Reverses = &reverses
	}
	return settlement
}
