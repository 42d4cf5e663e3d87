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

// ListSettlementsInput is the Huma input for listing a group's settlements.
type ListSettlementsInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
}

// ListSettlementsOutput is the Huma output for listing settlements.
type ListSettlementsOutput struct {
	Body struct {
		Settlements []Settlement `json:"settlements" doc:"Settlements, newest first, reversals included"`
	}
}

type settlementLister interface {
	ListSettlements(ctx context.Context, groupID uuid.UUID) ([]service.Settlement, error)
}

// ListSettlementsHandler handles GET /v1/groups/{groupID}/settlements.
type ListSettlementsHandler struct {
	SettlementService settlementLister
}

func NewListSettlementsHandler(svc settlementLister) *ListSettlementsHandler {
	return &ListSettlementsHandler{SettlementService: svc}
}

// Register registers the list settlements endpoint with the Huma API.
func (h *ListSettlementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-settlements",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/settlements",
		Summary:     "List settlements",
		Tags:        []string{"Settlements"},
	}, h.handle)
}

func (h *ListSettlementsHandler) handle(ctx context.Context, input *ListSettlementsInput) (*ListSettlementsOutput, error) {
	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}

	settlements, err := h.SettlementService.ListSettlements(ctx, groupID)
	if err != nil {
		return nil, apierr.FromService(err, "failed to list settlements")
	}
	logging.GetLogData(ctx).AddData("settlementCount", len(settlements))

	out := &ListSettlementsOutput{}
	out.Body.Settlements = make([]Settlement, len(settlements))
	for i, s := range settlements {
		out.Body.Settlements[i] = fromService(s)
	}
	return out, nil
}
