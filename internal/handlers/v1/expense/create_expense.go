package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/service"
	"github.com/carson-networks/fairshare-server/internal/split"
)

// CreateExpenseInput is the Huma input for recording an expense.
type CreateExpenseInput struct {
	GroupID string `path:"groupID" doc:"Group UUID"`
	Body    CreateExpenseBody
}

// CreateExpenseBody is the request body for recording an expense.
type CreateExpenseBody struct {
	Description string          `json:"description" minLength:"1" maxLength:"200" doc:"What the money was spent on"`
	TotalAmount string          `json:"totalAmount" doc:"Decimal total, at most two fractional digits (e.g. '30.00')"`
	Category    string          `json:"category,omitempty" doc:"Expense category, defaults to 'general'"`
	Payer       string          `json:"payer" minLength:"1" doc:"Member who paid"`
	ReceiptURL  string          `json:"receiptUrl,omitempty" format:"uri" doc:"Link to a receipt image"`
	SpentAt     string          `json:"spentAt,omitempty" format:"date-time" doc:"When the expense happened, defaults to now"`
	SplitPolicy SplitPolicyBody `json:"splitPolicy" doc:"How the total is divided"`
}

// SplitPolicyBody selects a split policy by type. Only the list matching the
// type is read.
type SplitPolicyBody struct {
	Type         string       `json:"type" enum:"equal,percentage,custom" doc:"Split policy"`
	Participants []string     `json:"participants,omitempty" doc:"Members sharing equally (equal)"`
	Shares       []ShareBody  `json:"shares,omitempty" doc:"Percentage per member (percentage)"`
	Amounts      []AmountBody `json:"amounts,omitempty" doc:"Exact amount per member (custom)"`
}

// ShareBody is one member's percentage.
type ShareBody struct {
	Member  string `json:"member" minLength:"1" doc:"Member identifier"`
	Percent string `json:"percent" doc:"Decimal percentage (e.g. '33.33')"`
}

// AmountBody is one member's exact amount.
type AmountBody struct {
	Member string `json:"member" minLength:"1" doc:"Member identifier"`
	Amount string `json:"amount" doc:"Decimal amount (e.g. '12.50')"`
}

// ExpenseOutput is the Huma output for endpoints returning a single expense.
type ExpenseOutput struct {
	Status int
	Body   Expense
}

type expenseCreator interface {
	CreateExpense(ctx context.Context, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/groups/{groupID}/expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/groups/{groupID}/expenses",
		Summary:       "Record an expense",
		Description:   "Records an expense paid by one member and splits it between members using an equal, percentage or custom policy.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseSplitPolicy(body SplitPolicyBody) (split.Policy, error) {
	switch split.Kind(body.Type) {
	case split.KindEqual:
		return split.Equal{Participants: body.Participants}, nil

	case split.KindPercentage:
		shares := make([]split.Share, len(body.Shares))
		for i, s := range body.Shares {
			percent, err := decimal.NewFromString(s.Percent)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid percent for "+s.Member, err)
			}
			shares[i] = split.Share{Member: s.Member, Percent: percent}
		}
		return split.Percentage{Shares: shares}, nil

	case split.KindCustom:
		amounts := make([]split.Amount, len(body.Amounts))
		for i, a := range body.Amounts {
			amount, err := money.ParseAmount(a.Amount)
			if err != nil {
				return nil, huma.NewError(http.StatusBadRequest, "invalid amount for "+a.Member, err)
			}
			amounts[i] = split.Amount{Member: a.Member, Amount: amount}
		}
		return split.Custom{Amounts: amounts}, nil

	default:
		return nil, huma.NewError(http.StatusBadRequest, "unknown split policy type "+body.Type)
	}
}

func parseCreateExpenseInput(input *CreateExpenseInput) (service.ExpenseCreate, error) {
	groupID, err := apierr.ParseID("groupID", input.GroupID)
	if err != nil {
		return service.ExpenseCreate{}, err
	}

	total, err := money.ParseAmount(input.Body.TotalAmount)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid totalAmount", err)
	}

	policy, err := parseSplitPolicy(input.Body.SplitPolicy)
	if err != nil {
		return service.ExpenseCreate{}, err
	}

	create := service.ExpenseCreate{
		GroupID:     groupID,
		Description: input.Body.Description,
		Total:       total,
		Category:    input.Body.Category,
		Payer:       input.Body.Payer,
		Policy:      policy,
	}
	if input.Body.ReceiptURL != "" {
		receipt := input.Body.ReceiptURL
		create.ReceiptURL = &receipt
	}
	if input.Body.SpentAt != "" {
		spentAt, err := time.Parse(time.RFC3339, input.Body.SpentAt)
		if err != nil {
			return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid spentAt", err)
		}
		create.SpentAt = spentAt
	}
	return create, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*ExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}
	logData.AddData("groupID", create.GroupID.String())
	logData.AddData("splitPolicy", input.Body.SplitPolicy.Type)

	stopTimer := logData.AddTiming("createExpenseMs")
	expense, err := h.ExpenseService.CreateExpense(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(err, "failed to create expense")
	}

	logData.AddData("expenseID", expense.ID.String())

	return &ExpenseOutput{Status: http.StatusCreated, Body: fromService(*expense)}, nil
}
