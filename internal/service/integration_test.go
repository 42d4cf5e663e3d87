//go:build integration

package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/fairshare-server/internal/money"
	"github.com/carson-networks/fairshare-server/internal/operator"
	"github.com/carson-networks/fairshare-server/internal/service"
	"github.com/carson-networks/fairshare-server/internal/split"
	"github.com/carson-networks/fairshare-server/internal/storage"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("fairshare"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	require.NoError(t, err)
	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "postgres", driver)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

func newIntegrationService(t *testing.T) *service.Service {
	t.Helper()
	store := storage.NewStorageFromDB(startPostgres(t))

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	delegator := operator.NewOperatorDelegator(store, 2, 16, logger)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return service.NewService(store, delegator, logger)
}

func TestIntegration_TripLedger(t *testing.T) {
	svc := newIntegrationService(t)
	ctx := context.Background()

	group, err := svc.Group.CreateGroup(ctx, service.GroupCreate{Name: "Lisbon", Creator: "alice"})
	require.NoError(t, err)
	for _, member := range []string{"bob", "carol"} {
		_, err := svc.Group.JoinGroup(ctx, group.ID, member)
		require.NoError(t, err)
	}

	dinner, err := svc.Expense.CreateExpense(ctx, service.ExpenseCreate{
		GroupID:     group.ID,
		Description: "Dinner",
		Total:       money.MustParse("100.00"),
		Payer:       "alice",
		Policy:      split.Equal{Participants: []string{"alice", "bob", "carol"}},
		SpentAt:     time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, dinner.Splits, 3)

	_, err = svc.Expense.CreateExpense(ctx, service.ExpenseCreate{
		GroupID:     group.ID,
		Description: "Taxi",
		Total:       money.MustParse("30.00"),
		Payer:       "bob",
		Policy: split.Custom{Amounts: []split.Amount{
			{Member: "bob", Amount: money.MustParse("10.00")},
			{Member: "carol", Amount: money.MustParse("20.00")},
		}},
	})
	require.NoError(t, err)

	settlement, err := svc.Settlement.RecordSettlement(ctx, service.SettlementCreate{
		GroupID: group.ID,
		From:    "carol",
		To:      "alice",
		Amount:  money.MustParse("20.00"),
	})
	require.NoError(t, err)

	balances, err := svc.Balance.GroupBalances(ctx, group.ID)
	require.NoError(t, err, spew.Sdump(balances))

	sum := money.Zero
	for _, b := range balances.Balances {
		sum = sum.Add(b.Amount)
	}
	assert.True(t, sum.IsZero(), "balances must sum to zero: %s", spew.Sdump(balances.Balances))
	assert.Equal(t, "alice", balances.Balances[0].Member)
	assert.Equal(t, "46.66", balances.Balances[0].Amount.String())

	_, err = svc.Settlement.ReverseSettlement(ctx, settlement.ID)
	require.NoError(t, err)
	_, err = svc.Settlement.ReverseSettlement(ctx, settlement.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyReversed)

	transfers, err := svc.Balance.SuggestedTransfers(ctx, group.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, transfers)

	require.NoError(t, svc.Expense.DeleteExpense(ctx, dinner.ID))
	expenses, next, err := svc.Expense.ListExpenses(ctx, group.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Taxi", expenses[0].Description)
}
