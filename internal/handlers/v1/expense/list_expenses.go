package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/service"
)

// ListExpensesCursor represents a pagination cursor in responses.
type ListExpensesCursor struct {
	Position int `json:"position" doc:"Offset of the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListExpensesInput is the Huma input for listing a group's expenses. Without
// a limit the service default applies.
type ListExpensesInput struct {
	GroupID  string `path:"groupID" doc:"Group UUID"`
	Position int    `query:"position" minimum:"0" doc:"Offset from a previous nextCursor"`
	Limit    int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size"`
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses   []Expense           `json:"expenses" doc:"Page of expenses, newest first"`
	NextCursor *ListExpensesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

type expenseLister interface {
	ListExpenses(ctx context.Context, groupID uuid.UUID, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error)
}

// ListExpensesHandler handles GET /v1/groups/{groupID}/expenses.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/groups/{groupID}/expenses",
		Summary:     "List expenses",
		Description: "Returns a page of the group's expenses with their splits, newest first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return nil, err
	}

	var cursor *service.ExpenseCursor
	if input.Position > 0 || input.Limit > 0 {
		cursor = &service.ExpenseCursor{Position: input.Position, Limit: input.Limit}
	}

	stopTimer := logData.AddTiming("listExpensesMs")
	expenses, next, err := h.ExpenseService.ListExpenses(ctx, groupID, cursor)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to list expenses")
	}
	logData.AddData("expenseCount", len(expenses))

	resp := ListExpensesResponseBody{Expenses: make([]Expense, len(expenses))}
	for i, e := range expenses {
		resp.Expenses[i] = fromService(e)
	}
	if next != nil {
		resp.NextCursor = &ListExpensesCursor{Position: next.Position, Limit: next.Limit}
	}
	return &ListExpensesOutput{Body: resp}, nil
}
