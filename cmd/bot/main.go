package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/swingbot/goswing/binance/client"
	"github.com/swingbot/goswing/binance/types"
	"github.com/swingbot/goswing/internal/scheduler"
	"github.com/swingbot/goswing/internal/strategies/swing"
	"github.com/swingbot/goswing/pkg/config"
	"github.com/swingbot/goswing/pkg/logger"
	"github.com/swingbot/goswing/pkg/shutdown"
)

// clockDriftWarn is how far the local clock may sit from the exchange
// clock before signed requests risk recvWindow rejections.
const clockDriftWarn = time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	if err := logger.InitDefault(); err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.Log.ToLoggerConfig()); err != nil {
		logrus.Fatalf("init logger from config: %v", err)
	}

	gateway := client.New(client.Config{
		BaseURL: cfg.API.BaseURL,
		Credentials: types.Credentials{
			APIKey:    cfg.API.Key,
			SecretKey: cfg.API.Secret,
		},
		RecvWindowMs: cfg.API.RecvWindowMs,
		TestMode:     cfg.API.TestMode,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checkConnectivity(ctx, gateway)

	strategy := swing.New(swing.Config{
		BaseAsset:        cfg.Trade.BaseAsset,
		QuoteAsset:       cfg.Trade.QuoteAsset,
		QuantityPerTrade: cfg.Trade.QuantityPerTrade,
		ThresholdPercent: cfg.Trade.ThresholdPercent,
	}, gateway)
	if err := strategy.Validate(); err != nil {
		logrus.Fatalf("strategy config: %v", err)
	}

	interval := time.Duration(cfg.Trade.PollIntervalMinutes) * time.Minute
	sched := scheduler.New(interval, func(ctx context.Context) error {
		_, err := strategy.RunCycle(ctx)
		return err
	})

	mgr := shutdown.NewManager()
	mgr.OnShutdown(func(context.Context) { cancel() })

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Infof("received %s, shutting down", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		mgr.Shutdown(shutdownCtx)
	}()

	logger.Infof("trading %s%s every %s (test mode: %v)",
		cfg.Trade.BaseAsset, cfg.Trade.QuoteAsset, interval, cfg.API.TestMode)

	if err := sched.Run(ctx); err != nil && err != context.Canceled {
		logger.Errorf("scheduler stopped: %v", err)
	}
	logger.Info("bot stopped")
}

// checkConnectivity pings the exchange and compares clocks before the
// first cycle. Failures are warnings: the loop retries every tick anyway.
func checkConnectivity(ctx context.Context, gateway *client.Client) {
	ok, err := gateway.Ping(ctx)
	if err != nil {
		logger.Warnf("ping failed: %v", err)
		return
	}
	if !ok {
		logger.Warnf("ping returned an unexpected body")
		return
	}

	serverMs, err := gateway.ServerTime(ctx)
	if err != nil {
		logger.Warnf("server time check failed: %v", err)
		return
	}
	drift := time.Since(time.UnixMilli(serverMs))
	if drift < 0 {
		drift = -drift
	}
	if drift > clockDriftWarn {
		logger.Warnf("local clock is %s away from the exchange clock; signed requests may be rejected", drift.Round(time.Millisecond))
	} else {
		logger.Infof("exchange reachable, clock drift %s", drift.Round(time.Millisecond))
	}
}
