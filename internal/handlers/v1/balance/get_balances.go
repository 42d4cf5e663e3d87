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

// MemberBalance is one member's net position. Positive means the group owes
// the member; negative means the member owes the group.
type MemberBalance struct {
	Member string `json:"member" doc:"Member identifier"`
	Amount string `json:"amount" doc:"Signed decimal balance"`
}

// GetBalancesInput is the Huma input for reading a group's balances.
type GetBalancesInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
}

// GetBalancesOutput is the Huma output for reading a group's balances.
type GetBalancesOutput struct {
	Body struct {
		Currency string          `json:"currency" doc:"Group currency"`
		Balances []MemberBalance `json:"balances" doc:"Roster members in join order, then former members"`
		Settled  bool            `json:"settled" doc:"Whether every balance is zero"`
	}
}

type balanceReader interface {
	GroupBalances(ctx context.Context, groupID uuid.UUID) (*service.GroupBalances, error)
}

// GetBalancesHandler handles GET /v1/groups/{groupID}/balances.
type GetBalancesHandler struct {
	BalanceService balanceReader
}

func NewGetBalancesHandler(svc balanceReader) *GetBalancesHandler {
	return &GetBalancesHandler{BalanceService: svc}
}

// Register registers the balances endpoint with the Huma API.
func (h *GetBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balances",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/balances",
		Summary:     "Get balances",
		Description: "Computes every member's net balance from the group's expenses and settlements.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *GetBalancesHandler) handle(ctx context.Context, input *GetBalancesInput) (*GetBalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logData.AddData("groupID", groupID.String())

	stopTimer := logData.AddTiming("computeBalancesMs")
	balances, err := h.BalanceService.GroupBalances(ctx, groupID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to compute balances")
	}
	logData.AddData("settled", balances.Settled)

	out := &GetBalancesOutput{}
	out.Body.Currency = balances.Currency
	out.Body.Settled = balances.Settled
	out.Body.Balances = make([]MemberBalance, len(balances.Balances))
	for i, b := range balances.Balances {
		out.Body.Balances[i] = MemberBalance{Member: b.Member, Amount: b.Amount.String()}
	}
	return out, nil
}
