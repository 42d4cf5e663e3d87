package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/carson-networks/fairshare-server/api"
	"github.com/carson-networks/fairshare-server/internal/config"
	"github.com/carson-networks/fairshare-server/internal/logging"
	"github.com/carson-networks/fairshare-server/internal/metrics"
	"github.com/carson-networks/fairshare-server/internal/operator"
	"github.com/carson-networks/fairshare-server/internal/service"
	"github.com/carson-networks/fairshare-server/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("godotenv.Load")
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("fairshare-server starting")

	metrics.Init()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, envConfig.OperatorQueueSize, logger)
	delegator.Start()

	svc := service.NewService(dbStorage, delegator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:      logger,
		Port:        envConfig.HTTPPort,
		Service:     svc,
		DB:          dbStorage,
		RateLimiter: rate.NewLimiter(rate.Limit(envConfig.RateLimitPerSecond), envConfig.RateLimitBurst),
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}

	delegator.Stop()
	logger.Info("fairshare-server stopped")
}
