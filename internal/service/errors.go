package service

import (
	"errors"

	"github.com/carson-networks/fairshare-server/internal/operator/actions"
)

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrNotGroupMember     = errors.New("not a member of the group")
	ErrInvalidGroup       = errors.New("invalid group")
	ErrInvalidExpense     = errors.New("invalid expense")
	ErrInvalidSettlement  = errors.New("invalid settlement")
	ErrAllocationMismatch = errors.New("split allocation does not match the expense total")

	ErrAlreadyReversed       = actions.ErrAlreadyReversed
	ErrCannotReverseReversal = actions.ErrCannotReverseReversal
)
