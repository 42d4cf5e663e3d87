package settlement

import (
	"time"

	"github.com/carson-networks/fairshare-server/internal/service"
)

// Settlement is the API response model for a settlement.
type Settlement struct {
	ID        string  `json:"id" doc:"Settlement UUID"`
	GroupID   string  `json:"groupId" doc:"Group UUID"`
	From      string  `json:"from" doc:"Member who paid"`
	To        string  `json:"to" doc:"Member who was paid"`
	Amount    string  `json:"amount" doc:"Decimal amount with two fractional digits"`
	Reverses  *string `json:"reverses,omitempty" doc:"Settlement this entry cancels, if it is a reversal"`
	SettledAt string  `json:"settledAt" doc:"When the payment happened (RFC 3339)"`
	CreatedAt string  `json:"createdAt" doc:"When the payment was recorded (RFC 3339)"`
}

func fromService(s service.Settlement) Settlement {
	settlement := Settlement{
		ID:        s.ID.String(),
		GroupID:   s.GroupID.String(),
		From:      s.From,
		To:        s.To,
		Amount:    s.Amount.String(),
		SettledAt: s.SettledAt.Format(time.RFC3339),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.Reverses != nil {
		reverses := s.Reverses.String()
		settlement.Reverses = &reverses
	}
	return settlement
}

// SettlementOutput is the Huma output for endpoints returning a single settlement.
type SettlementOutput struct {
	Status int
	Body   Settlement
}
