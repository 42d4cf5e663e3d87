package split

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/fairshare-server/internal/money"
)

var (
	// PercentTolerance is how far percentages may drift from 100.
	PercentTolerance = decimal.RequireFromString("0.5")
	// CustomTolerance is how far custom amounts may drift from the total.
	CustomTolerance = money.FromMinorUnits(1)

	hundredPercent = decimal.NewFromInt(100)
)

// Portion is the amount one member owes for an expense.
type Portion struct {
	Member string
	Amount money.Money
}

// Allocation lists portions in the policy's member order.
type Allocation []Portion

// Total sums the portions.
func (a Allocation) Total() money.Money {
	total := money.Zero
	for _, p := range a {
		total = total.Add(p.Amount)
	}
	return total
}

// ByMember returns the allocation as a member → amount map.
func (a Allocation) ByMember() map[string]money.Money {
	out := make(map[string]money.Money, len(a))
	for _, p := range a {
		out[p.Member] = p.Amount
	}
	return out
}

// Allocate resolves policy against total. For Equal and Percentage the portions
// always sum to total exactly, and every listed member gets a portion, 0.00
// included. Custom amounts are returned verbatim once they are within
// CustomTolerance of total. Totals above money.MaxAmount are rejected.
func Allocate(total money.Money, policy Policy) (Allocation, error) {
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativeTotal, total)
	}
	if total.GreaterThan(money.MaxAmount) {
		return nil, fmt.Errorf("%w: total %s exceeds %s", money.ErrInvalidAmount, total, money.MaxAmount)
	}

	switch p := policy.(type) {
	case Equal:
		return allocateEqual(total, p)
	case *Equal:
		return allocateEqual(total, *p)
	case Percentage:
		return allocatePercentage(total, p)
	case *Percentage:
		return allocatePercentage(total, *p)
	case Custom:
		return allocateCustom(total, p)
	case *Custom:
		return allocateCustom(total, *p)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPolicy, policy)
	}
}

func allocateEqual(total money.Money, p Equal) (Allocation, error) {
	if len(p.Participants) == 0 {
		return nil, ErrEmptyParticipantSet
	}
	if err := checkDistinct(p.Participants); err != nil {
		return nil, err
	}

	count := int64(len(p.Participants))
	cents := total.MinorUnits()
	base := cents / count
	remainder := cents % count

	result := make(Allocation, len(p.Participants))
	for i, member := range p.Participants {
		amount := base
		if int64(i) < remainder {
			amount++
		}
		result[i] = Portion{Member: member, Amount: money.FromMinorUnits(amount)}
	}
	return result, nil
}

func allocatePercentage(total money.Money, p Percentage) (Allocation, error) {
	if len(p.Shares) == 0 {
		return nil, ErrEmptyParticipantSet
	}
	if err := checkDistinct(p.Members()); err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, s := range p.Shares {
		if s.Percent.IsNegative() {
			return nil, fmt.Errorf("%w: %s has %s%%", ErrNegativeShare, s.Member, s.Percent.String())
		}
		sum = sum.Add(s.Percent)
	}
	if sum.Sub(hundredPercent).Abs().GreaterThan(PercentTolerance) {
		return nil, &MismatchError{Err: ErrPercentageMismatch, Expected: hundredPercent, Actual: sum}
	}

	type entry struct {
		member    string
		cents     int64
		remainder decimal.Decimal
	}

	entries := make([]entry, len(p.Shares))
	order := make([]int, 0, len(p.Shares))
	allocated := int64(0)
	for i, s := range p.Shares {
		entries[i] = entry{member: s.Member}
		if s.Percent.IsZero() {
			continue
		}
		raw := total.Decimal().Mul(s.Percent).Div(hundredPercent)
		rounded := money.FromDecimal(raw)
		entries[i].cents = rounded.MinorUnits()
		entries[i].remainder = raw.Sub(rounded.Decimal())
		allocated += entries[i].cents
		order = append(order, i)
	}
	if len(order) == 0 {
		return nil, ErrEmptyParticipantSet
	}

	// Largest remainder: hand out (or claw back) the rounding drift one minor
	// unit at a time, starting with the entries rounding treated worst.
	// Members with a 0% share stay at zero.
	drift := total.MinorUnits() - allocated
	slices.SortStableFunc(order, func(a, b int) int {
		if drift > 0 {
			return entries[b].remainder.Cmp(entries[a].remainder)
		}
		return entries[a].remainder.Cmp(entries[b].remainder)
	})

	for i := 0; drift != 0; i = (i + 1) % len(order) {
		e := &entries[order[i]]
		if drift > 0 {
			e.cents++
			drift--
			continue
		}
		if e.cents > 0 {
			e.cents--
			drift++
		}
	}

	result := make(Allocation, len(entries))
	for i, e := range entries {
		result[i] = Portion{Member: e.member, Amount: money.FromMinorUnits(e.cents)}
	}
	return result, nil
}

func allocateCustom(total money.Money, p Custom) (Allocation, error) {
	if len(p.Amounts) == 0 {
		return nil, ErrEmptyParticipantSet
	}
	if err := checkDistinct(p.Members()); err != nil {
		return nil, err
	}

	sum := money.Zero
	result := make(Allocation, len(p.Amounts))
	for i, a := range p.Amounts {
		if a.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s owes %s", ErrNegativeShare, a.Member, a.Amount)
		}
		sum = sum.Add(a.Amount)
		result[i] = Portion{Member: a.Member, Amount: a.Amount}
	}

	if sum.Sub(total).Abs().GreaterThan(CustomTolerance) {
		return nil, &MismatchError{Err: ErrCustomAmountMismatch, Expected: total.Decimal(), Actual: sum.Decimal()}
	}
	return result, nil
}

func checkDistinct(members []string) error {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, m)
		}
		seen[m] = struct{}{}
	}
	return nil
}
