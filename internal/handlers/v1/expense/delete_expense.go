package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ExpenseID string `path:"expenseID" doc:"Expense UUID"`
}

type expenseDeleter interface {
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

// DeleteExpenseHandler handles DELETE /v1/expenses/{expenseID}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-expense",
		Method:        http.MethodDelete,
		Path:          "/v1/expenses/{expenseID}",
		Summary:       "Delete an expense",
		Description:   "Deletes an expense and its splits. Balances are recomputed without it.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*struct{}, error) {
	id, err := apierr.ParseID("expenseID", input.ExpenseID)
	if err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("expenseID", id.String())

	if err := h.ExpenseService.DeleteExpense(ctx, id); err != nil {
		return nil, apierr.FromService(err, "failed to delete expense")
	}
	return nil, nil
}
