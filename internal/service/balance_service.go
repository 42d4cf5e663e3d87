package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fairshare-server/internal/ledger"
	"github.com/carson-networks/fairshare-server/internal/metrics"
	"github.com/carson-networks/fairshare-server/internal/storage"
)

// BalanceService derives balances from a group's full history. Nothing is
// cached; every call recomputes from the stored expenses and settlements.
type BalanceService struct {
	storage *storage.Storage
	logger  *logrus.Logger
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(store *storage.Storage, logger *logrus.Logger) *BalanceService {
	return &BalanceService{storage: store, logger: logger}
}

// GroupBalances returns every member's net position. It fails with an error
// wrapping ledger.ErrLedgerInconsistency if a stored expense does not add up.
func (s *BalanceService) GroupBalances(ctx context.Context, groupID uuid.UUID) (*GroupBalances, error) {
	group, roster, err := loadRoster(ctx, s.storage, groupID)
	if err != nil {
		return nil, err
	}

	expenseRows, err := s.storage.Expenses.ListByGroup(ctx, groupID, nil)
	if err != nil {
		return nil, err
	}
	settlementRows, err := s.storage.Settlements.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]string, len(roster))
	for i, m := range roster {
		members[i] = m.MemberID
	}

	expenses := make([]ledger.Expense, len(expenseRows))
	for i, row := range expenseRows {
		splits := make([]ledger.Split, len(row.Splits))
		for j, sp := range row.Splits {
			splits[j] = ledger.Split{Member: sp.MemberID, Owed: sp.Amount}
		}
		expenses[i] = ledger.Expense{
			ID:     row.ID.String(),
			Payer:  row.PaidBy,
			Total:  row.Amount,
			Splits: splits,
		}
	}

	settlements := make([]ledger.Settlement, len(settlementRows))
	for i, row := range settlementRows {
		settlements[i] = ledger.Settlement{
			ID:     row.ID.String(),
			From:   row.FromMember,
			To:     row.ToMember,
			Amount: row.Amount,
		}
	}

	balances, err := ledger.ComputeBalances(members, expenses, settlements)
	if err != nil {
		var inconsistency *ledger.InconsistencyError
		if errors.As(err, &inconsistency) {
			metrics.LedgerInconsistencies.Inc()
			metrics.BalanceComputations.WithLabelValues("inconsistent").Inc()
			s.logger.WithError(err).WithFields(logrus.Fields{
				"groupID":   groupID.String(),
				"expenseID": inconsistency.ExpenseID,
				"total":     inconsistency.Total.String(),
				"splitSum":  inconsistency.SplitSum.String(),
			}).Error("BalanceService.GroupBalances.ledgerInconsistency")
		}
		return nil, err
	}
	metrics.BalanceComputations.WithLabelValues("ok").Inc()

	return &GroupBalances{
		GroupID:  group.ID,
		Currency: group.Currency,
		Balances: orderBalances(members, balances),
		Settled:  balances.Settled(),
	}, nil
}

// SuggestedTransfers returns a short list of payments that would settle the group.
func (s *BalanceService) SuggestedTransfers(ctx context.Context, groupID uuid.UUID) ([]SuggestedTransfer, error) {
	groupBalances, err := s.GroupBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances := make(ledger.Balances, len(groupBalances.Balances))
	for _, b := range groupBalances.Balances {
		balances[b.Member] = b.Amount
	}

	transfers, err := ledger.Simplify(balances)
	if err != nil {
		return nil, err
	}

	suggested := make([]SuggestedTransfer, len(transfers))
	for i, t := range transfers {
		suggested[i] = SuggestedTransfer{
			From:    t.From,
			To:      t.To,
			Amount:  t.Amount,
			Summary: t.Describe(groupBalances.Currency),
		}
	}
	return suggested, nil
}

// orderBalances lists roster members in join order, then anyone else in the
// history sorted by id.
func orderBalances(roster []string, balances ledger.Balances) []MemberBalance {
	ordered := make([]MemberBalance, 0, len(balances))
	seen := make(map[string]struct{}, len(roster))
	for _, m := range roster {
		seen[m] = struct{}{}
		ordered = append(ordered, MemberBalance{Member: m, Amount: balances[m]})
	}
	for _, m := range balances.Members() {
		if _, ok := seen[m]; ok {
			continue
		}
		ordered = append(ordered, MemberBalance{Member: m, Amount: balances[m]})
	}
	return ordered
}
