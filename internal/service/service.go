package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/storage"
)

// actionProcessor runs a write action in its own transaction.
// *operator.OperatorDelegator is the production implementation.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Group      *GroupService
	Expense    *ExpenseService
	Settlement *SettlementService
	Balance    *BalanceService
}

// NewService creates a new Service. Reads go straight to storage; writes go
// through the operator.
func NewService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *Service {
	return &Service{
		Group:      NewGroupService(store, op),
		Expense:    NewExpenseService(store, op, logger),
		Settlement: NewSettlementService(store, op),
		Balance:    NewBalanceService(store, logger),
	}
}
