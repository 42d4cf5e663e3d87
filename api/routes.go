package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/carson-networks/fairshare-server/internal/handlers/v1/balance"
	"github.com/carson-networks/fairshare-server/internal/handlers/v1/expense"
	"github.com/carson-networks/fairshare-server/internal/handlers/v1/group"
	"github.com/carson-networks/fairshare-server/internal/handlers/v1/settlement"
	"github.com/carson-networks/fairshare-server/internal/handlers/v1/status"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/metrics"
	"github.com/carson-networks/fairshare-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	DB          Pinger
	RateLimiter *rate.Limiter
}

// Handler builds the full HTTP handler: the huma operations under /v1, plus
// /status and /metrics.
func (r *Rest) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	statusHandler := status.NewHandler(r.DB)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	router.Handle("/metrics", metrics.Handler())

	api := humachi.New(router, huma.DefaultConfig("FairShare API", "1.0.0"))
	api.UseMiddleware(
		logging.Middleware(r.Logger),
		metrics.Middleware,
		RateLimitWrites(api, r.RateLimiter),
	)

	group.NewCreateGroupHandler(r.Service.Group).Register(api)
	group.NewGetGroupHandler(r.Service.Group).Register(api)
	group.NewListGroupsHandler(r.Service.Group).Register(api)
	group.NewJoinGroupHandler(r.Service.Group).Register(api)
	group.NewGetPublicGroupHandler(r.Service.Group).Register(api)

	expense.NewCreateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewListExpensesHandler(r.Service.Expense).Register(api)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(api)

	settlement.NewCreateSettlementHandler(r.Service.Settlement).Register(api)
	settlement.NewListSettlementsHandler(r.Service.Settlement).Register(api)
	settlement.NewReverseSettlementHandler(r.Service.Settlement).Register(api)

	balance.NewGetBalancesHandler(r.Service.Balance).Register(api)
	balance.NewSuggestedTransfersHandler(r.Service.Balance).Register(api)

	return otelhttp.NewHandler(router, "fairshare-server")
}

// RateLimitWrites rejects non-GET operations with 429 once the limiter runs
// dry. A nil limiter disables the check.
func RateLimitWrites(api huma.API, limiter *rate.Limiter) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if limiter == nil || ctx.Method() == http.MethodGet || limiter.Allow() {
			next(ctx)
			return
		}
		_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")
	}
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
