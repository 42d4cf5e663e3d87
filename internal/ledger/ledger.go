package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/carson-networks/fairshare-server/internal/money"
)

var (
	ErrLedgerInconsistency = errors.New("ledger: inconsistency")
	ErrUnbalanced          = errors.New("ledger: balances do not sum to zero")
)

// Split is one member's owed share of an expense.
type Split struct {
	Member string
	Owed   money.Money
}

// Expense is a payment advanced by Payer on behalf of the split members.
type Expense struct {
	ID     string
	Payer  string
	Total  money.Money
	Splits []Split
}

// Settlement is a repayment from From to To.
type Settlement struct {
	ID     string
	From   string
	To     string
	Amount money.Money
}

// InconsistencyError reports an expense whose splits do not add up to its total.
type InconsistencyError struct {
	ExpenseID string
	Total     money.Money
	SplitSum  money.Money
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%v: expense %s totals %s but its splits sum to %s",
		ErrLedgerInconsistency, e.ExpenseID, e.Total, e.SplitSum)
}

func (e *InconsistencyError) Unwrap() error {
	return ErrLedgerInconsistency
}

// Balances maps a member to their net position. Positive means the group owes
// the member; negative means the member owes the group.
type Balances map[string]money.Money

// Sum adds every balance. For balances produced by ComputeBalances it is zero.
func (b Balances) Sum() money.Money {
	total := money.Zero
	for _, amount := range b {
		total = total.Add(amount)
	}
	return total
}

// Settled reports whether every balance is within half a minor unit of zero.
func (b Balances) Settled() bool {
	for _, amount := range b {
		if !amount.IsZero() {
			return false
		}
	}
	return true
}

// Members returns the member ids sorted.
func (b Balances) Members() []string {
	members := make([]string, 0, len(b))
	for m := range b {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// ComputeBalances folds a group's expense and settlement history into net
// balances. Every roster member appears, with zero if they have no activity.
// Members that appear only in history (for example someone who left the group)
// are included too, so the balances always sum to zero.
//
// An expense whose splits do not sum to its total aborts the computation with an
// *InconsistencyError instead of producing non-conserving balances.
func ComputeBalances(members []string, expenses []Expense, settlements []Settlement) (Balances, error) {
	balances := make(Balances, len(members))
	for _, m := range members {
		balances[m] = money.Zero
	}

	for _, e := range expenses {
		splitSum := money.Zero
		for _, s := range e.Splits {
			splitSum = splitSum.Add(s.Owed)
		}
		if !splitSum.Equal(e.Total) {
			return nil, &InconsistencyError{ExpenseID: e.ID, Total: e.Total, SplitSum: splitSum}
		}

		balances[e.Payer] = balances[e.Payer].Add(e.Total)
		for _, s := range e.Splits {
			balances[s.Member] = balances[s.Member].Sub(s.Owed)
		}
	}

	for _, s := range settlements {
		balances[s.From] = balances[s.From].Add(s.Amount)
		balances[s.To] = balances[s.To].Sub(s.Amount)
	}

	return balances, nil
}
