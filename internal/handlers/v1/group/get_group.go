package group

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// GetGroupInput is the Huma input for fetching a group.
type GetGroupInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
}

type groupGetter interface {
	GetGroup(ctx context.Context, id uuid.UUID) (*service.Group, error)
}

// GetGroupHandler handles GET /v1/groups/{groupID}.
type GetGroupHandler struct {
	GroupService groupGetter
}

func NewGetGroupHandler(svc groupGetter) *GetGroupHandler {
	return &GetGroupHandler{GroupService: svc}
}

// Register registers the get group endpoint with the Huma API.
func (h *GetGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-group",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}",
		Summary:     "Get a group",
		Description: "Returns a group and its members in join order.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *GetGroupHandler) handle(ctx context.Context, input *GetGroupInput) (*GroupOutput, error) {
	id, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("groupID", id.String())

	group, err := h.GroupService.GetGroup(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err, "failed to get group")
	}

	return &GroupOutput{Status: http.StatusOK, Body: fromService(*group)}, nil
}
