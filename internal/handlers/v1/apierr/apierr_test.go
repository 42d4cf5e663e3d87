package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fairshare-server/internal/ledger"
	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/service"
	"github.com/carson-networks/fairshare-server/internal/split"
)

func statusOf(t *testing.T, err error) (int, string) {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se))
	return se.GetStatus(), se.Error()
}

func TestFromService(t *testing.T) {
	mismatch := &split.MismatchError{
		Err:      split.ErrPercentageMismatch,
		Expected: decimal.NewFromInt(100),
		Actual:   decimal.NewFromInt(90),
	}

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"percentage mismatch", mismatch, http.StatusBadRequest},
		{"invalid amount", fmt.Errorf("%w: abc", money.ErrInvalidAmount), http.StatusBadRequest},
		{"not member", fmt.Errorf("%w: %q", service.ErrNotGroupMember, "eve"), http.StatusBadRequest},
		{"group not found", service.ErrGroupNotFound, http.StatusNotFound},
		{"already reversed", service.ErrAlreadyReversed, http.StatusConflict},
		{"inconsistency", &ledger.InconsistencyError{ExpenseID: "e1"}, http.StatusInternalServerError},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := statusOf(t, FromService(tc.err, "failed"))
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestFromService_MismatchNamedInMessage(t *testing.T) {
	err := FromService(&split.MismatchError{
		Err:      split.ErrPercentageMismatch,
		Expected: decimal.NewFromInt(100),
		Actual:   decimal.NewFromInt(90),
	}, "failed")

	_, msg := statusOf(t, err)
	assert.Contains(t, msg, "percentages do not sum to 100")
	assert.Contains(t, msg, "got 90")
}

func TestFromService_HidesInternalDetail(t *testing.T) {
	_, msg := statusOf(t, FromService(errors.New("pq: password authentication failed"), "failed to list groups"))

	assert.Contains(t, msg, "failed to list groups")
}

func TestParseID(t *testing.T) {
	_, err := ParseID("groupID", "not-a-uuid")
	status, _ := statusOf(t, err)
	assert.Equal(t, http.StatusBadRequest, status)

	id, err := ParseID("groupID", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())
}
