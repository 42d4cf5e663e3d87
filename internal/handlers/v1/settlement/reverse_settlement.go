package settlement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// ReverseSettlementInput is the Huma input for reversing a settlement.
type ReverseSettlementInput struct {
	SettlementID string `path:"settlementID" doc:"Settlement UUID"`
}

type settlementReverser interface {
	ReverseSettlement(ctx context.Context, id uuid.UUID) (*service.Settlement, error)
}

// ReverseSettlementHandler handles POST /v1/settlements/{settlementID}/reverse.
type ReverseSettlementHandler struct {
	SettlementService settlementReverser
}

func NewReverseSettlementHandler(svc settlementReverser) *ReverseSettlementHandler {
	return &ReverseSettlementHandler{SettlementService: svc}
}

// Register registers the reverse settlement endpoint with the Huma API.
func (h *ReverseSettlementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "reverse-settlement",
		Method:        http.MethodPost,
		Path:          "/v1/settlements/{settlementID}/reverse",
		Summary:       "Reverse a settlement",
		Description:   "Records a compensating settlement in the opposite direction. The original stays in the history.",
		Tags:          []string{"Settlements"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *ReverseSettlementHandler) handle(ctx context.Context, input *ReverseSettlementInput) (*SettlementOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := apierr.ParseID("settlementID", input.SettlementID)
	if err != nil {
		return nil, err
	}
	logData.AddData("settlementID", id.String())

	reversal, err := h.SettlementService.ReverseSettlement(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err, "failed to reverse settlement")
	}
	logData.AddData("reversalID", reversal.ID.String())

	return &SettlementOutput{Status: http.StatusCreated, Body: fromService(*reversal)}, nil
}
