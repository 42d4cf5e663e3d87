package group

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// ListGroupsInput is the Huma input for listing a member's groups.
type ListGroupsInput struct {
	MemberID string `query:"memberID" required:"true" minLength:"1" doc:"Member whose groups to list"`
}

// ListGroupsOutput is the Huma output for listing groups.
type ListGroupsOutput struct {
	Body struct {
		Groups []Group `json:"groups" doc:"Groups the member belongs to, oldest first"`
	}
}

type groupLister interface {
	ListGroups(ctx context.Context, memberID string) ([]service.Group, error)
}

// ListGroupsHandler handles GET /v1/groups.
type ListGroupsHandler struct {
	GroupService groupLister
}

func NewListGroupsHandler(svc groupLister) *ListGroupsHandler {
	return &ListGroupsHandler{GroupService: svc}
}

// Register registers the list groups endpoint with the Huma API.
func (h *ListGroupsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-groups",
		Method:      http.MethodGet,
		Path:        "/v1/groups",
		Summary:     "List groups",
		Description: "Returns the groups a member belongs to.",
		Tags:        []string{"Groups"},
	}, h.handle)
}

func (h *ListGroupsHandler) handle(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listGroupsMs")
	groups, err := h.GroupService.ListGroups(ctx, input.MemberID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to list groups")
	}
	logData.AddData("groupCount", len(groups))

	out := &ListGroupsOutput{}
	out.Body.Groups = make([]Group, len(groups))
	for i, g := range groups {
		out.Body.Groups[i] = fromService(g)
	}
	return out, nil
}
