package expense

import (
	"time"

	"github.com/carson-networks/fairshare-server/internal/service"
)

// Expense is the API response model for an expense.
type Expense struct {
	ID          string  `json:"id" doc:"Expense UUID"`
	GroupID     string  `json:"groupId" doc:"Group UUID"`
	Description string  `json:"description" doc:"What the money was spent on"`
	TotalAmount string  `json:"totalAmount" doc:"Decimal total with two fractional digits"`
	Payer       string  `json:"payer" doc:"Member who paid"`
	Category    string  `json:"category" doc:"Expense category"`
	ReceiptURL  *string `json:"receiptUrl,omitempty" doc:"Link to a receipt image"`
	SpentAt     string  `json:"spentAt" doc:"When the expense happened (RFC 3339)"`
	CreatedAt   string  `json:"createdAt" doc:"When the expense was recorded (RFC 3339)"`
	Splits      []Split `json:"splits" doc:"What each member owes, summing to totalAmount"`
}

// Split is one member's share of an expense.
type Split struct {
	Member string `json:"member" doc:"Member identifier"`
	Amount string `json:"amount" doc:"Decimal amount owed"`
}

func fromService(e service.Expense) Expense {
	expense := Expense{
		ID:          e.ID.String(),
		GroupID:     e.GroupID.String(),
		Description: e.Description,
		TotalAmount: e.Total.String(),
		Payer:       e.Payer,
		Category:    e.Category,
		ReceiptURL:  e.ReceiptURL,
		SpentAt:     e.SpentAt.Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		Splits:      make([]Split, len(e.Splits)),
	}
	for i, s := range e.Splits {
		expense.Splits[i] = Split{Member: s.Member, Amount: s.Amount.String()}
	}
	return expense
}
