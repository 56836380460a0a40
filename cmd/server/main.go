package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/stockline/backend/internal/application/catalog"
	identityapp "github.com/stockline/backend/internal/application/identity"
	indentapp "github.com/stockline/backend/internal/application/indents"
	issuingapp "github.com/stockline/backend/internal/application/issuing"
	procurementapp "github.com/stockline/backend/internal/application/procurement"
	receivingapp "github.com/stockline/backend/internal/application/receiving"
	"github.com/stockline/backend/internal/application/reconciliation"
	stocksapp "github.com/stockline/backend/internal/application/stocks"
	"github.com/stockline/backend/internal/infrastructure/auth"
	"github.com/stockline/backend/internal/infrastructure/config"
	"github.com/stockline/backend/internal/infrastructure/event"
	"github.com/stockline/backend/internal/infrastructure/logger"
	"github.com/stockline/backend/internal/infrastructure/persistence"
	"github.com/stockline/backend/internal/interfaces/http/handler"
	"github.com/stockline/backend/internal/interfaces/http/router"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Stockline backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	indentRepo := persistence.NewGormIndentRepository(db.DB)
	purchaseEntryRepo := persistence.NewGormPurchaseEntryRepository(db.DB)
	vendorDeptRepo := persistence.NewGormVendorDeptRepository(db.DB)
	psirRepo := persistence.NewGormPSIRRepository(db.DB)
	vsirRepo := persistence.NewGormVSIRRepository(db.DB)
	vendorIssueRepo := persistence.NewGormVendorIssueRepository(db.DB)
	inhouseIssueRepo := persistence.NewGormInHouseIssueRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)

	// Redis backs the token blacklist and the cross-process event
	// fanout. When it is unreachable both degrade to in-process only.
	var blacklist auth.TokenBlacklist
	var redisClient *redis.Client
	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisErr := redisClient.Ping(pingCtx).Err()
	pingCancel()
	if redisErr != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(redisErr))
		_ = redisClient.Close()
		redisClient = nil
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklistWithClient(redisClient)
		log.Info("Redis connected", zap.String("addr", redisAddr))
		defer func() {
			_ = redisClient.Close()
		}()
	}

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	if redisClient != nil {
		eventBus.Subscribe(event.NewRedisFanout(redisClient, "stockline:events", log))
	}

	// Reconciliation engine
	snapshotBuilder := reconciliation.NewSnapshotBuilder(
		indentRepo, purchaseEntryRepo, vendorDeptRepo,
		psirRepo, vsirRepo,
		vendorIssueRepo, inhouseIssueRepo,
		stockRepo,
	)
	reconcileService := reconciliation.NewService(snapshotBuilder, cfg.Reconcile.SnapshotStale)
	hub := reconciliation.NewHub(reconcileService, purchaseEntryRepo, stockRepo, cfg.Reconcile, log)
	eventBus.Subscribe(hub)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, eventBus, identityapp.DefaultAuthServiceConfig(), log)
	itemService := catalogapp.NewItemService(itemRepo, eventBus)
	indentService := indentapp.NewIndentService(indentRepo, itemRepo, eventBus)
	purchaseService := procurementapp.NewPurchaseService(purchaseEntryRepo, vendorDeptRepo, itemRepo, eventBus)
	receiptService := receivingapp.NewReceiptService(psirRepo, vsirRepo, itemRepo, vendorIssueRepo, eventBus)
	issueService := issuingapp.NewIssueService(vendorIssueRepo, inhouseIssueRepo, itemRepo, reconcileService, eventBus)
	stockService := stocksapp.NewStockService(stockRepo, itemRepo, eventBus)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()
	defer hub.Stop()

	engine := router.New(router.Handlers{
		System:    handler.NewSystemHandler(cfg.App.Name, appVersion),
		Auth:      handler.NewAuthHandler(authService),
		Item:      handler.NewItemHandler(itemService),
		Indent:    handler.NewIndentHandler(indentService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Issue:     handler.NewIssueHandler(issueService),
		Stock:     handler.NewStockHandler(stockService),
		Reconcile: handler.NewReconcileHandler(reconcileService, hub),
	}, router.Options{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
