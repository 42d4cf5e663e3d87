package settlement

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// CreateSettlementInput is the Huma input for recording a settlement.
type CreateSettlementInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
	Body    CreateSettlementBody
}

// CreateSettlementBody is the request body for recording a settlement.
type CreateSettlementBody struct {
	From      string `json:"from" minLength:"1" doc:"Member who paid"`
	To        string `json:"to" minLength:"1" doc:"Member who was paid"`
	Amount    string `json:"amount" doc:"Positive decimal amount (e.g. '15.00')"`
	SettledAt string `json:"settledAt,omitempty" format:"date-time" doc:"When the payment happened, defaults to now"`
}

type settlementRecorder interface {
	RecordSettlement(ctx context.Context, create service.SettlementCreate) (*service.Settlement, error)
}

// CreateSettlementHandler handles POST /v1/groups/{groupID}/settlements.
type CreateSettlementHandler struct {
	SettlementService settlementRecorder
}

func NewCreateSettlementHandler(svc settlementRecorder) *CreateSettlementHandler {
	return &CreateSettlementHandler{SettlementService: svc}
}

// Register registers the create settlement endpoint with the Huma API.
func (h *CreateSettlementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-settlement",
		Method:        http.MethodPost,
		Path:          "/v1/groups/{groupID}/settlements",
		Summary:       "Record a settlement",
		Description:   "Records a repayment from one member to another.",
		Tags:          []string{"Settlements"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSettlementHandler) handle(ctx context.Context, input *CreateSettlementInput) (*SettlementOutput, error) {
	logData := logging.GetLogData(ctx)

	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logData.AddData("groupID", groupID.String())

	amount, err := money.ParseAmount(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	create := service.SettlementCreate{
		GroupID: groupID,
		From:    input.Body.From,
		To:      input.Body.To,
		Amount:  amount,
	}
	if input.Body.SettledAt != "" {
		settledAt, err := time.Parse(time.RFC3339, input.Body.SettledAt)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid settledAt", err)
		}
		create.SettledAt = settledAt
	}

	stopTimer := logData.AddTiming("createSettlementMs")
	settlement, err := h.SettlementService.RecordSettlement(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to record settlement")
	}

	logData.AddData("settlementID", settlement.ID.String())

	return &SettlementOutput{Status: http.StatusCreated, Body: fromService(*settlement)}, nil
}
