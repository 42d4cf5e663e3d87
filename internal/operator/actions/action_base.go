package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/fairshare-server/internal/storage"
)

var (
	ErrAlreadyReversed       = errors.New("settlement has already been reversed")
	ErrCannotReverseReversal = errors.New("a reversal cannot itself be reversed")
)

// IAction is a unit of write work. Perform runs inside one database
// transaction that is committed only if it returns nil.
type IAction interface {
	ActionName() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
