package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/split"
)

const DefaultCurrency = "EUR"

// Group is the service-layer model for a group.
type Group struct {
	ID        uuid.UUID
	Name      string
	Currency  string
	CreatedAt time.Time
	Members   []Member
}

// Member is one entry of a group's roster.
type Member struct {
	ID       string
	JoinedAt time.Time
}

// PublicGroup is the invite preview of a group: enough to decide whether to
// join, without ids or history.
type PublicGroup struct {
	Name        string
	Currency    string
	MemberCount int
	Members     []string
}

// GroupCreate is the input for creating a group.
type GroupCreate struct {
	Name     string
	Currency string
	Creator  string
}

// Expense is the service-layer model for an expense.
type Expense struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	Description string
	Total       money.Money
	Payer       string
	Category    string
	ReceiptURL  *string
	SpentAt     time.Time
	CreatedAt   time.Time
	Splits      []Split
}

// Split is a member's owed share of an expense.
type Split struct {
	Member string
	Amount money.Money
}

// ExpenseCreate is the input for recording an expense. Zero SpentAt means now.
type ExpenseCreate struct {
	GroupID     uuid.UUID
	Description string
	Total       money.Money
	Category    string
	Payer       string
	Policy      split.Policy
	ReceiptURL  *string
	SpentAt     time.Time
}

// ExpenseCursor is the position and page size for listing expenses.
type ExpenseCursor struct {
	Position int
	Limit    int
}

// Settlement is the service-layer model for a settlement.
type Settlement struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	From      string
	To        string
	Amount    money.Money
	Reverses  *uuid.UUID
	SettledAt time.Time
	CreatedAt time.Time
}

// SettlementCreate is the input for recording a settlement. Zero SettledAt means now.
type SettlementCreate struct {
	GroupID   uuid.UUID
	From      string
	To        string
	Amount    money.Money
	SettledAt time.Time
}

// MemberBalance is a member's net position in a group.
type MemberBalance struct {
	Member string
	Amount money.Money
}

// GroupBalances are the balances of every member, roster first and then any
// former member who still appears in the history.
type GroupBalances struct {
	GroupID  uuid.UUID
	Currency string
	Balances []MemberBalance
	Settled  bool
}

// SuggestedTransfer is a payment that moves the group towards settled.
type SuggestedTransfer struct {
	From    string
	To      string
	Amount  money.Money
	Summary string
}
