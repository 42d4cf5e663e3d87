package operator

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fairshare-server/internal/storage"
)

type recordingTx struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (tx *recordingTx) Commit(context.Context) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.commits++
	return tx.commitErr
}

func (tx *recordingTx) Rollback(context.Context) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.rollbacks++
	return nil
}

type fakeOpener struct {
	tx      *recordingTx
	openErr error
	mu      sync.Mutex
	opened  int
}

func (f *fakeOpener) Write(context.Context) (*storage.Writer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.opened++
	return storage.NewWriterFromTables(f.tx, nil, nil, nil), nil
}

type funcAction struct {
	perform func(ctx context.Context, writer *storage.Writer) error
}

func (a *funcAction) ActionName() string { return "test_action" }

func (a *funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return a.perform(ctx, writer)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func startDelegator(t *testing.T, opener *fakeOpener) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(opener, 2, 10, quietLogger())
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

// -- Process tests --

func TestProcess_CommitsOnSuccess(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	d := startDelegator(t, opener)

	performed := false
	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error {
		performed = true
		return nil
	}})

	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, 1, opener.tx.commits)
	assert.Equal(t, 0, opener.tx.rollbacks)
}

func TestProcess_RollsBackOnError(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	d := startDelegator(t, opener)

	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error {
		return errors.New("perform failed")
	}})

	assert.EqualError(t, err, "perform failed")
	assert.Equal(t, 0, opener.tx.commits)
	assert.Equal(t, 1, opener.tx.rollbacks)
}

func TestProcess_RollsBackOnPanic(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	d := startDelegator(t, opener)

	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error {
		panic("boom")
	}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "test_action panicked: boom")
	assert.Equal(t, 1, opener.tx.rollbacks)

	// The worker survives the panic.
	err = d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error { return nil }})
	assert.NoError(t, err)
}

func TestProcess_CommitError(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{commitErr: errors.New("serialization failure")}}
	d := startDelegator(t, opener)

	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error { return nil }})

	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_OpenError(t *testing.T) {
	opener := &fakeOpener{openErr: errors.New("connection refused")}
	d := startDelegator(t, opener)

	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error {
		t.Fatal("perform must not run without a transaction")
		return nil
	}})

	assert.EqualError(t, err, "connection refused")
}

func TestProcess_AfterStop(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	d := NewOperatorDelegator(opener, 1, 1, quietLogger())
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error { return nil }})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_ConcurrentCallers(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	d := startDelegator(t, opener)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), &funcAction{perform: func(context.Context, *storage.Writer) error { return nil }}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, opener.tx.commits)
}

// -- processItem tests --

func TestProcessItem_SkipsCancelledCaller(t *testing.T) {
	opener := &fakeOpener{tx: &recordingTx{}}
	op := NewOperator(opener, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := op.processItem(ActionItem{
		ctx:    ctx,
		action: &funcAction{perform: func(context.Context, *storage.Writer) error { return nil }},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, opener.opened)
}
