package settlement

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/service"
)

type mockSettlementService struct {
	mock.Mock
}

func (m *mockSettlementService) RecordSettlement(ctx context.Context, create service.SettlementCreate) (*service.Settlement, error) {
	args := m.Called(ctx, create)
	settlement, _ := args.Get(0).(*service.Settlement)
	return settlement, args.Error(1)
}

func (m *mockSettlementService) ListSettlements(ctx context.Context, groupID uuid.UUID) ([]service.Settlement, error) {
	args := m.Called(ctx, groupID)
	settlements, _ := args.Get(0).([]service.Settlement)
	return settlements, args.Error(1)
}

func (m *mockSettlementService) ReverseSettlement(ctx context.Context, id uuid.UUID) (*service.Settlement, error) {
	args := m.Called(ctx, id)
	settlement, _ := args.Get(0).(*service.Settlement)
	return settlement, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSettlementService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateSettlementHandler(svc).Register(api)
	NewListSettlementsHandler(svc).Register(api)
	NewReverseSettlementHandler(svc).Register(api)
	return api
}

var settledAt = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

func TestCreateSettlement_Created(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	groupID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	svc.On("RecordSettlement", mock.Anything, mock.MatchedBy(func(c service.SettlementCreate) bool {
		return c.GroupID == groupID && c.From == "bob" && c.To == "alice" &&
			c.Amount.Equal(money.MustParse("15.00")) && c.SettledAt.Equal(settledAt)
	})).Return(&service.Settlement{
		ID: id, GroupID: groupID, From: "bob", To: "alice",
		Amount: money.MustParse("15.00"), SettledAt: settledAt, CreatedAt: settledAt,
	}, nil)

	resp := api.Post("/v1/groups/"+groupID.String()+"/settlements", map[string]any{
		"from":      "bob",
		"to":        "alice",
		"amount":    "15",
		"settledAt": "2024-03-02T09:00:00Z",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Settlement
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "15.00", body.Amount)
	assert.Nil(t, body.Reverses)
	svc.AssertExpectations(t)
}

func TestCreateSettlement_InvalidAmount(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/groups/"+uuid.Must(uuid.NewV4()).String()+"/settlements", map[string]any{
		"from":   "bob",
		"to":     "alice",
		"amount": "ten",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "RecordSettlement", mock.Anything, mock.Anything)
}

func TestCreateSettlement_SelfSettlement(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)

	svc.On("RecordSettlement", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidSettlement)

	resp := api.Post("/v1/groups/"+uuid.Must(uuid.NewV4()).String()+"/settlements", map[string]any{
		"from":   "bob",
		"to":     "bob",
		"amount": "5.00",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListSettlements(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	groupID := uuid.Must(uuid.NewV4())
	original := uuid.Must(uuid.NewV4())

	svc.On("ListSettlements", mock.Anything, groupID).Return([]service.Settlement{
		{ID: uuid.Must(uuid.NewV4()), GroupID: groupID, From: "alice", To: "bob", Amount: money.MustParse("15.00"), Reverses: &original, SettledAt: settledAt},
		{ID: original, GroupID: groupID, From: "bob", To: "alice", Amount: money.MustParse("15.00"), SettledAt: settledAt},
	}, nil)

	resp := api.Get("/v1/groups/" + groupID.String() + "/settlements")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Settlements []Settlement `json:"settlements"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Settlements, 2)
	require.NotNil(t, body.Settlements[0].Reverses)
	assert.Equal(t, original.String(), *body.Settlements[0].Reverses)
}

func TestListSettlements_GroupNotFound(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	groupID := uuid.Must(uuid.NewV4())

	svc.On("ListSettlements", mock.Anything, groupID).Return(nil, service.ErrGroupNotFound)

	resp := api.Get("/v1/groups/" + groupID.String() + "/settlements")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReverseSettlement_Created(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	original := uuid.Must(uuid.NewV4())
	reversal := uuid.Must(uuid.NewV4())

	svc.On("ReverseSettlement", mock.Anything, original).Return(&service.Settlement{
		ID: reversal, From: "alice", To: "bob", Amount: money.MustParse("15.00"), Reverses: &original, SettledAt: settledAt,
	}, nil)

	resp := api.Post("/v1/settlements/" + original.String() + "/reverse")

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"reverses":"`+original.String()+`"`)
}

func TestReverseSettlement_Conflict(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("ReverseSettlement", mock.Anything, id).Return(nil, service.ErrAlreadyReversed)

	resp := api.Post("/v1/settlements/" + id.String() + "/reverse")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestReverseSettlement_NotFound(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("ReverseSettlement", mock.Anything, id).Return(nil, service.ErrSettlementNotFound)

	resp := api.Post("/v1/settlements/" + id.String() + "/reverse")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReverseSettlement_BadID(t *testing.T) {
	svc := &mockSettlementService{}
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/settlements/not-a-uuid/reverse")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
