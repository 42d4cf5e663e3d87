package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fairshare-server/internal/metrics"
	"github.com/carson-networks/fairshare-server/internal/operator/actions"
)

var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    WriteOpener
	queue      chan ActionItem
	numWorkers int
	logger     *logrus.Logger
	wg         sync.WaitGroup
	stopOnce   sync.Once
	mu         sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(s WriteOpener, numWorkers, queueSize int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
		logger:     logger,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop closes the queue and waits for queued actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
		d.logger.Info("OperatorDelegator.Stop")
	})
}

// Process queues the action and waits for its transaction to finish.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		metrics.OperatorQueueDepth.Set(float64(len(d.queue)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
