// Package apierr maps service and core errors onto huma status errors.
package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fairshare-server/internal/ledger"
	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/service"
	"github.com/carson-networks/fairshare-server/internal/split"
)

var badRequest = []error{
	money.ErrInvalidAmount,
	split.ErrEmptyParticipantSet,
	split.ErrPercentageMismatch,
	split.ErrCustomAmountMismatch,
	split.ErrDuplicateMember,
	split.ErrNegativeShare,
	split.ErrNegativeTotal,
	split.ErrUnknownPolicy,
	service.ErrInvalidGroup,
	service.ErrInvalidExpense,
	service.ErrInvalidSettlement,
	service.ErrNotGroupMember,
}

var notFound = []error{
	service.ErrGroupNotFound,
	service.ErrExpenseNotFound,
	service.ErrSettlementNotFound,
}

var conflict = []error{
	service.ErrAlreadyReversed,
	service.ErrCannotReverseReversal,
}

// FromService converts err into a huma error. Client mistakes keep their
// message so the caller learns what was wrong; anything unrecognised becomes a
// 500 with the fallback message.
func FromService(err error, fallback string) error {
	switch {
	case isAny(err, badRequest):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case isAny(err, notFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case isAny(err, conflict):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrLedgerInconsistency):
		return huma.NewError(http.StatusInternalServerError, "ledger inconsistency", err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}

// ParseID parses a UUID path parameter, answering 400 when it is malformed.
func ParseID(name, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
