package balance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// Transfer is a suggested payment.
type Transfer struct {
	From    string `json:"from" doc:"Member who should pay"`
	To      string `json:"to" doc:"Member who should be paid"`
	Amount  string `json:"amount" doc:"Decimal amount"`
	Summary string `json:"summary" doc:"Readable form, e.g. 'bob owes alice €12.50'"`
}

// SuggestedTransfersInput is the Huma input for suggesting transfers.
type SuggestedTransfersInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
}

// SuggestedTransfersOutput is the Huma output for suggesting transfers.
type SuggestedTransfersOutput struct {
	Body struct {
		Transfers []Transfer `json:"transfers" doc:"Payments that settle the group, largest first"`
	}
}

type transferSuggester interface {
	SuggestedTransfers(ctx context.Context, groupID uuid.UUID) ([]service.SuggestedTransfer, error)
}

// SuggestedTransfersHandler handles GET /v1/groups/{groupID}/transfers.
type SuggestedTransfersHandler struct {
	BalanceService transferSuggester
}

func NewSuggestedTransfersHandler(svc transferSuggester) *SuggestedTransfersHandler {
	return &SuggestedTransfersHandler{BalanceService: svc}
}

// Register registers the suggested transfers endpoint with the Huma API.
func (h *SuggestedTransfersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggested-transfers",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/transfers",
		Summary:     "Suggest transfers",
		Description: "Returns a short list of payments that would bring every balance to zero.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *SuggestedTransfersHandler) handle(ctx context.Context, input *SuggestedTransfersInput) (*SuggestedTransfersOutput, error) {
	logData := logging.GetLogData(ctx)

	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logData.AddData("groupID", groupID.String())

	transfers, err := h.BalanceService.SuggestedTransfers(ctx, groupID)
	if err != nil {
		return nil, apierr.FromService(err, "failed to suggest transfers")
	}
	logData.AddData("transferCount", len(transfers))

	out := &SuggestedTransfersOutput{}
	out.Body.Transfers = make([]Transfer, len(transfers))
	for i, t := range transfers {
		out.Body.Transfers[i] = Transfer{From: t.From, To: t.To, Amount: t.Amount.String(), Summary: t.Summary}
	}
	return out, nil
}
