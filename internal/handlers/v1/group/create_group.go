package group

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// CreateGroupInput is the Huma input for creating a group.
type CreateGroupInput struct {
	Body CreateGroupBody
}

// CreateGroupBody is the request body for creating a group.
type CreateGroupBody struct {
	Name     string `json:"name" minLength:"1" maxLength:"100" doc:"Group name"`
	Currency string `json:"currency,omitempty" doc:"3-letter currency code, defaults to EUR"`
	Creator  string `json:"creator" minLength:"1" doc:"Member creating the group; becomes its first member"`
}

type groupCreator interface {
	CreateGroup(ctx context.Context, create service.GroupCreate) (*service.Group, error)
}

// CreateGroupHandler handles POST /v1/groups.
type CreateGroupHandler struct {
	GroupService groupCreator
}

func NewCreateGroupHandler(svc groupCreator) *CreateGroupHandler {
	return &CreateGroupHandler{GroupService: svc}
}

// Register registers the create group endpoint with the Huma API.
func (h *CreateGroupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-group",
		Method:        http.MethodPost,
		Path:          "/v1/groups",
		Summary:       "Create a group",
		Description:   "Creates a group whose first member is the creator.",
		Tags:          []string{"Groups"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGroupHandler) handle(ctx context.Context, input *CreateGroupInput) (*GroupOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createGroupMs")
	group, err := h.GroupService.CreateGroup(ctx, service.GroupCreate{
		Name:     input.Body.Name,
		Currency: input.Body.Currency,
		Creator:  input.Body.Creator,
	})
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to create group")
	}

	logData.AddData("groupID", group.ID.String())

	return &GroupOutput{Status: http.StatusCreated, Body: fromService(*group)}, nil
}
