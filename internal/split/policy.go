package split

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fairshare-server/internal/money"
)

// Kind names a split policy on the wire and in storage.
type Kind string

const (
	KindEqual      Kind = "equal"
	KindPercentage Kind = "percentage"
	KindCustom     Kind = "custom"
)

// Policy is one of Equal, Percentage or Custom. The set is closed: only types in
// this package implement it, and Allocate handles each of them.
type Policy interface {
	Kind() Kind
	Members() []string
	policy()
}

// Equal divides the total evenly between Participants. Leftover minor units go
// to participants in the order given.
type Equal struct {
	Participants []string
}

// Share is one member's percentage of an expense.
type Share struct {
	Member  string
	Percent decimal.Decimal
}

// Percentage divides the total by each member's percent. Percents must sum to
// 100 within PercentTolerance.
type Percentage struct {
	Shares []Share
}

// Amount is an exact amount owed by one member.
type Amount struct {
	Member string
	Amount money.Money
}

// Custom uses caller-supplied amounts, which must sum to the total within
// CustomTolerance.
type Custom struct {
	Amounts []Amount
}

func (Equal) Kind() Kind      { return KindEqual }
func (Percentage) Kind() Kind { return KindPercentage }
func (Custom) Kind() Kind     { return KindCustom }

func (p Equal) Members() []string {
	return append([]string(nil), p.Participants...)
}

func (p Percentage) Members() []string {
	members := make([]string, len(p.Shares))
	for i, s := range p.Shares {
		members[i] = s.Member
	}
	return members
}

func (p Custom) Members() []string {
	members := make([]string, len(p.Amounts))
	for i, a := range p.Amounts {
		members[i] = a.Member
	}
	return members
}

func (Equal) policy()      {}
func (Percentage) policy() {}
func (Custom) policy()     {}
