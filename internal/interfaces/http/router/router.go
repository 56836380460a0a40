package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockline/backend/internal/infrastructure/auth"
	"github.com/stockline/backend/internal/infrastructure/config"
	"github.com/stockline/backend/internal/infrastructure/logger"
	"github.com/stockline/backend/internal/interfaces/http/handler"
	"github.com/stockline/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 4 << 20 // 4 MiB

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	System    *handler.SystemHandler
	Auth      *handler.AuthHandler
	Item      *handler.ItemHandler
	Indent    *handler.IndentHandler
	Purchase  *handler.PurchaseHandler
	Receipt   *handler.ReceiptHandler
	Issue     *handler.IssueHandler
	Stock     *handler.StockHandler
	Reconcile *handler.ReconcileHandler
}

// Options carries the cross-cutting pieces the router wires into its
// middleware chain.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
}

// New builds the gin engine with the full middleware chain and all
// API routes mounted under /api/v1.
func New(h Handlers, opts Options) *gin.Engine {
	if opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(opts.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(opts.Config.HTTP.TrustedProxies)
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(opts.Config.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = opts.Config.HTTP.CORSAllowOrigins
	}
	if len(opts.Config.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = opts.Config.HTTP.CORSAllowMethods
	}
	if len(opts.Config.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = opts.Config.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(opts.Logger))
	engine.Use(logger.Recovery(opts.Logger))
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(maxBodyBytes))
	engine.Use(middleware.RateLimit(middleware.NewRateLimiter(300, time.Minute)))

	jwtCfg := middleware.DefaultJWTConfig(opts.JWTService)
	jwtCfg.TokenBlacklist = opts.Blacklist
	jwtCfg.Logger = opts.Logger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	engine.GET("/health", h.System.Health)

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/health", h.System.Health)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/logout", h.Auth.Logout)
			authGroup.GET("/profile", h.Auth.Profile)
			authGroup.POST("/change-password", h.Auth.ChangePassword)
		}

		items := v1.Group("/items")
		{
			items.POST("", h.Item.Create)
			items.GET("", h.Item.List)
			items.PUT("", h.Item.Import)
			items.GET("/:id", h.Item.Get)
			items.PUT("/:id", h.Item.Update)
			items.DELETE("/:id", h.Item.Delete)
		}

		indents := v1.Group("/indents")
		{
			indents.GET("/next-indent-no", h.Indent.NextIndentNo)
			indents.GET("/next-oa-no", h.Indent.NextOANo)
			indents.POST("", h.Indent.Create)
			indents.GET("", h.Indent.List)
			indents.GET("/:id", h.Indent.Get)
			indents.PUT("/:id", h.Indent.Update)
			indents.DELETE("/:id", h.Indent.Delete)
		}

		entries := v1.Group("/purchase-entries")
		{
			entries.POST("", h.Purchase.CreateEntry)
			entries.GET("", h.Purchase.ListEntries)
			entries.GET("/:id", h.Purchase.GetEntry)
			entries.PUT("/:id", h.Purchase.UpdateEntry)
			entries.DELETE("/:id", h.Purchase.DeleteEntry)
		}

		vendorDepts := v1.Group("/vendor-dept-orders")
		{
			vendorDepts.POST("", h.Purchase.CreateVendorDept)
			vendorDepts.GET("", h.Purchase.ListVendorDepts)
			vendorDepts.GET("/:id", h.Purchase.GetVendorDept)
			vendorDepts.PUT("/:id", h.Purchase.UpdateVendorDept)
			vendorDepts.POST("/:id/inspection", h.Purchase.RecordInspection)
			vendorDepts.DELETE("/:id", h.Purchase.DeleteVendorDept)
		}

		psirs := v1.Group("/psirs")
		{
			psirs.GET("/next-batch-no", h.Receipt.NextBatchNo)
			psirs.POST("", h.Receipt.CreatePSIR)
			psirs.GET("", h.Receipt.ListPSIRs)
			psirs.GET("/:id", h.Receipt.GetPSIR)
			psirs.PUT("/:id", h.Receipt.UpdatePSIR)
			psirs.DELETE("/:id", h.Receipt.DeletePSIR)
		}

		vsirs := v1.Group("/vsirs")
		{
			vsirs.POST("", h.Receipt.CreateVSIR)
			vsirs.GET("", h.Receipt.ListVSIRs)
			vsirs.GET("/:id", h.Receipt.GetVSIR)
			vsirs.PUT("/:id", h.Receipt.UpdateVSIR)
			vsirs.DELETE("/:id", h.Receipt.DeleteVSIR)
		}

		vendorIssues := v1.Group("/vendor-issues")
		{
			vendorIssues.GET("/next-issue-no", h.Issue.NextVendorIssueNo)
			vendorIssues.GET("/next-dc-no", h.Issue.NextDCNo)
			vendorIssues.POST("", h.Issue.CreateVendorIssue)
			vendorIssues.GET("", h.Issue.ListVendorIssues)
			vendorIssues.GET("/:id", h.Issue.GetVendorIssue)
			vendorIssues.POST("/:id/vendor-batch", h.Issue.AssignVendorBatch)
			vendorIssues.DELETE("/:id", h.Issue.DeleteVendorIssue)
		}

		inhouseIssues := v1.Group("/inhouse-issues")
		{
			inhouseIssues.GET("/next-req-no", h.Issue.NextReqNo)
			inhouseIssues.GET("/next-issue-no", h.Issue.NextInHouseIssueNo)
			inhouseIssues.POST("", h.Issue.CreateInHouseIssue)
			inhouseIssues.GET("", h.Issue.ListInHouseIssues)
			inhouseIssues.GET("/:id", h.Issue.GetInHouseIssue)
			inhouseIssues.PUT("/:id", h.Issue.UpdateInHouseIssue)
			inhouseIssues.DELETE("/:id", h.Issue.DeleteInHouseIssue)
		}

		stocksGroup := v1.Group("/stocks")
		{
			stocksGroup.POST("", h.Stock.Create)
			stocksGroup.GET("", h.Stock.List)
			stocksGroup.PUT("", h.Stock.Import)
			stocksGroup.GET("/:id", h.Stock.Get)
			stocksGroup.PUT("/:id", h.Stock.Update)
			stocksGroup.DELETE("/:id", h.Stock.Delete)
		}

		reconcileGroup := v1.Group("/reconcile")
		{
			reconcileGroup.GET("/allocations", h.Reconcile.Allocations)
			reconcileGroup.GET("/stock-summary", h.Reconcile.StockSummary)
			reconcileGroup.GET("/closing-stock/:code", h.Reconcile.ClosingStock)
			reconcileGroup.GET("/remaining-stock/:code", h.Reconcile.RemainingStock)
			reconcileGroup.GET("/batch-detail", h.Reconcile.BatchDetail)
			reconcileGroup.GET("/available-batches", h.Reconcile.AvailableBatches)
			reconcileGroup.GET("/watch", h.Reconcile.Watch)
		}
	}

	return engine
}
