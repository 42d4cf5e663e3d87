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

// PublicGroup is the API response model for an invite preview.
type PublicGroup struct {
	Name        string   `json:"name" doc:"Group name"`
	Currency    string   `json:"currency" doc:"ISO 4217 currency code"`
	MemberCount int      `json:"memberCount" doc:"Number of members on the roster"`
	Members     []string `json:"members" doc:"Member identifiers in join order"`
}

// PublicGroupOutput is the Huma output for the invite preview.
type PublicGroupOutput struct {
	Body PublicGroup
}

type publicGroupGetter interface {
	PublicGroup(ctx context.Context, id uuid.UUID) (*service.PublicGroup, error)
}

// GetPublicGroupHandler handles GET /v1/groups/{groupID}/public.
type GetPublicGroupHandler struct {
	GroupService publicGroupGetter
}

func NewGetPublicGroupHandler(svc publicGroupGetter) *GetPublicGroupHandler {
	return &GetPublicGroupHandler{GroupService: svc}
}

// Register registers the public group endpoint with the Huma API.
func (h *GetPublicGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-public-group",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/public",
		Summary:     "Preview a group",
		Description: "Returns what an invitee sees before joining: name, currency and roster.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *GetPublicGroupHandler) handle(ctx context.Context, input *GetGroupInput) (*PublicGroupOutput, error) {
	id, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("groupID", id.String())

	preview, err := h.GroupService.PublicGroup(ctx, id)
	if err != nil {
		return nil, apierr.FromService(err, "failed to get group preview")
	}

	return &PublicGroupOutput{Body: PublicGroup{
		Name:        preview.Name,
		Currency:    preview.Currency,
		MemberCount: preview.MemberCount,
		Members:     preview.Members,
	}}, nil
}
