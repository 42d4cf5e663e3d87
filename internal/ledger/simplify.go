package ledger

import (
	"fmt"
	"slices"

	"github.com/carson-networks/fairshare-server/internal/money"
)

// Transfer is a suggested payment that moves money from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount money.Money
}

// Describe renders the transfer as "X owes Y €Z".
func (t Transfer) Describe(currency string) string {
	return fmt.Sprintf("%s owes %s %s", t.From, t.To, FormatAmount(t.Amount, currency))
}

// FormatAmount prefixes the amount with the currency symbol, or the ISO code
// followed by a space when no symbol is known.
func FormatAmount(amount money.Money, currency string) string {
	switch currency {
	case "EUR":
		return "€" + amount.String()
	case "USD":
		return "$" + amount.String()
	case "GBP":
		return "£" + amount.String()
	default:
		return currency + " " + amount.String()
	}
}

type position struct {
	member string
	cents  int64
}

// Simplify suggests transfers that bring every balance to zero. It repeatedly
// matches the largest creditor with the largest debtor, so n non-zero members
// need at most n-1 transfers. Ties go to the lexically smaller member id.
func Simplify(balances Balances) ([]Transfer, error) {
	if sum := balances.Sum(); !sum.IsZero() {
		return nil, fmt.Errorf("%w: sum is %s", ErrUnbalanced, sum)
	}

	var creditors, debtors []position
	for _, member := range balances.Members() {
		cents := balances[member].MinorUnits()
		switch {
		case cents > 0:
			creditors = append(creditors, position{member: member, cents: cents})
		case cents < 0:
			debtors = append(debtors, position{member: member, cents: -cents})
		}
	}

	var transfers []Transfer
	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largest(creditors)
		di := largest(debtors)

		amount := min(creditors[ci].cents, debtors[di].cents)
		transfers = append(transfers, Transfer{
			From:   debtors[di].member,
			To:     creditors[ci].member,
			Amount: money.FromMinorUnits(amount),
		})

		creditors[ci].cents -= amount
		debtors[di].cents -= amount
		if creditors[ci].cents == 0 {
			creditors = slices.Delete(creditors, ci, ci+1)
		}
		if debtors[di].cents == 0 {
			debtors = slices.Delete(debtors, di, di+1)
		}
	}

	return transfers, nil
}

// largest returns the index of the biggest position. Positions are kept sorted by
// member, so the first maximum is also the smallest member id.
func largest(positions []position) int {
	best := 0
	for i := 1; i < len(positions); i++ {
		if positions[i].cents > positions[best].cents {
			best = i
		}
	}
	return best
}

// AsSettlements converts transfers into settlements so they can be fed back
// through ComputeBalances.
func AsSettlements(transfers []Transfer) []Settlement {
	settlements := make([]Settlement, len(transfers))
	for i, t := range transfers {
		settlements[i] = Settlement{
			ID:     fmt.Sprintf("suggested-%d", i+1),
			From:   t.From,
			To:     t.To,
			Amount: t.Amount,
		}
	}
	return settlements
}
