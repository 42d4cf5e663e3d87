package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fairshare-server/internal/metrics"
	"github.com/carson-networks/fairshare-server/internal/operator/actions"
	"github.com/carson-networks/fairshare-server/internal/storage"
)

// WriteOpener opens a transaction-scoped Writer. *storage.Storage is the
// production implementation.
type WriteOpener interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriteOpener
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s WriteOpener, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		metrics.OperatorQueueDepth.Set(float64(len(o.queue)))
		err := o.processItem(item)
		o.record(item.action, err)
		item.response <- ActionItemResponse{err: err}
	}
}

func (o *Operator) processItem(item ActionItem) (err error) {
	// The caller stopped waiting; do not start a transaction nobody will see.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback()
			err = fmt.Errorf("action %s panicked: %v", item.action.ActionName(), r)
		}
	}()

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			o.logger.WithError(rbErr).WithField("action", item.action.ActionName()).Warn("Operator.processItem.rollback")
		}
		return err
	}

	return writer.Commit()
}

func (o *Operator) record(action actions.IAction, err error) {
	outcome := "committed"
	if err != nil {
		outcome = "failed"
		o.logger.WithError(err).WithField("action", action.ActionName()).Debug("Operator.processItem.failed")
	}
	metrics.OperatorActions.WithLabelValues(action.ActionName(), outcome).Inc()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
