package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyParticipantSet  = errors.New("split: empty participant set")
	ErrPercentageMismatch   = errors.New("split: percentages do not sum to 100")
	ErrCustomAmountMismatch = errors.New("split: custom amounts do not sum to the total")
	ErrDuplicateMember      = errors.New("split: member listed more than once")
	ErrNegativeShare        = errors.New("split: negative share")
	ErrNegativeTotal        = errors.New("split: negative total")
	ErrUnknownPolicy        = errors.New("split: unknown policy")
)

// MismatchError carries the expected and actual sums of a rejected policy so the
// caller can tell the user how far off the input was.
type MismatchError struct {
	Err      error
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s (difference %s)",
		e.Err, e.Expected.String(), e.Actual.String(), e.Difference().String())
}

func (e *MismatchError) Unwrap() error {
	return e.Err
}

// Difference is Actual minus Expected.
func (e *MismatchError) Difference() decimal.Decimal {
	return e.Actual.Sub(e.Expected)
}
