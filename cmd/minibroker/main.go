package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/efreitasn/minibroker/internal/broadcast"
	"github.com/efreitasn/minibroker/internal/config"
	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/handler"
	"github.com/efreitasn/minibroker/internal/scheduler"
	"github.com/efreitasn/minibroker/internal/service"
	"github.com/efreitasn/minibroker/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil || resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Load configuration (.env first, then the environment).
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Instantiate stores.
	catalog := store.NewCatalogStore(domain.DefaultCatalog())
	account := store.NewAccountStore(domain.Balance{KRW: cfg.OpeningKRW, USD: cfg.OpeningUSD})
	trades := store.NewTradeStore()
	users := store.NewUserStore()

	// Engine.
	feed := engine.NewPriceFeed(catalog, rand.New(rand.NewSource(time.Now().UnixNano())))
	board := engine.NewMoversBoard()
	board.Reload(catalog.List())
	gate := engine.NewLimitsGate(cfg.MaxStockTypes)
	valuer := engine.NewValuer(catalog, engine.FixedRate{USDKRW: cfg.USDKRWRate})
	exec := engine.NewExecutionEngine(catalog, account, trades, gate, cfg.ExecutionDelay)

	// Broadcast loop.
	hub := broadcast.NewHub()
	broadcaster := broadcast.NewBroadcaster(hub, feed, board, catalog, account, valuer, gate, cfg.TickInterval, logger)

	// Services.
	authSvc := service.NewAuthService(users, gate)
	marketSvc := service.NewMarketService(catalog, board)
	tradingSvc := service.NewTradingService(exec, trades, account, gate, valuer, broadcaster, cfg.HistoryPageSize)

	// Daily limits reset at the trading-day boundary.
	sched := scheduler.New(logger)
	if err := sched.AddJob(cfg.DailyResetSchedule, service.NewDailyResetJob(gate, broadcaster)); err != nil {
		logger.Error("failed to schedule daily reset", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()

	// Router.
	router := handler.NewRouter(authSvc, marketSvc, tradingSvc, hub, cfg.AllowedOrigins, logger)

	// Start broadcast goroutine with cancellable context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go broadcaster.Run(ctx)

	// Configure HTTP server.
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start HTTP server in a goroutine.
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	// Graceful shutdown: stop HTTP server, scheduler, and broadcast loop.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	sched.Stop()
	cancel()

	logger.Info("server stopped")
}
