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

// JoinGroupInput is the Huma input for joining a group.
type JoinGroupInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
	Body    struct {
		Member string `json:"member" minLength:"1" doc:"Member joining the group"`
	}
}

type groupJoiner interface {
	JoinGroup(ctx context.Context, id uuid.UUID, memberID string) (*service.Group, error)
}

// JoinGroupHandler handles POST /v1/groups/{groupID}/join.
type JoinGroupHandler struct {
	GroupService groupJoiner
}

func NewJoinGroupHandler(svc groupJoiner) *JoinGroupHandler {
	return &JoinGroupHandler{GroupService: svc}
}

// Register registers the join group endpoint with the Huma API.
func (h *JoinGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "join-group",
		Method:      http.MethodPost,
		Path:        "/v1/groups/{groupID}/join",
		Summary:     "Join a group",
		Description: "Adds a member to the group. Joining a group twice has no effect.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *JoinGroupHandler) handle(ctx context.Context, input *JoinGroupInput) (*GroupOutput, error) {
	id, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}
	logData := logging.GetLogData(ctx)
	logData.AddData("groupID", id.String())
	logData.AddData("memberID", input.Body.Member)

	group, err := h.GroupService.JoinGroup(ctx, id, input.Body.Member)
	if err != nil {
		return nil, apierr.FromService(err, "failed to join group")
	}

	return &GroupOutput{Status: http.StatusOK, Body: fromService(*group)}, nil
}
