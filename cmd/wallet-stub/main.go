package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wallet-client/internal/stub"
	"wallet-client/pkg/config"
	"wallet-client/pkg/logger"
)

func main() {
	config.Init()
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	cfg := config.Global.Stub
	store := stub.NewStore(stub.StoreConfig{
		DefaultPin:       cfg.DefaultPIN,
		SeedBalance:      mustDecimal(cfg.SeedBalance),
		MaxTransferLimit: mustDecimal(cfg.MaxTransferLimit),
		FeePercentage:    mustDecimal(cfg.FeePercentage),
	})
	router := stub.NewRouter(stub.NewHandler(store), true)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting stub Wallet Service", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP Server failure", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down stub Wallet Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited properly")
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		logger.Fatal("invalid decimal in stub config", zap.String("value", s), zap.Error(err))
	}
	return d
}
