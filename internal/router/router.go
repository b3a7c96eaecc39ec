// Package router assembles the HTTP surface: services, handlers and
// middleware over a single database handle.
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"ledger/internal/auth"
	"ledger/internal/config"
	_ "ledger/internal/docs" // Register swagger docs
	"ledger/internal/handlers"
	"ledger/internal/insight"
	"ledger/internal/metrics"
	"ledger/internal/middleware"
	"ledger/internal/services"
	"ledger/internal/validator"
)

// Options are the optional collaborators of New.
type Options struct {
	// Pinger backs the health check. Nil reports liveness only.
	Pinger handlers.Pinger
	// Metrics records request and domain metrics. Nil creates a fresh registry.
	Metrics *metrics.Registry
}

// New wires services and handlers over db and returns the Gin engine.
func New(cfg *config.Config, db *gorm.DB, opts Options) (*gin.Engine, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpirationDur)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	reg := opts.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	validator.Register()

	// Services
	userService := services.NewUserService(db, cfg.BcryptCost, cfg.StoreTimeout)
	transactionService := services.NewTransactionService(db, cfg.StoreTimeout)
	summaryService := services.NewSummaryService(transactionService, insight.NewGenerator(insight.DefaultPolicy()))
	auditService := services.NewAuditService(nil)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, auditService, reg)
	transactionHandler := handlers.NewTransactionHandler(transactionService, summaryService, auditService, reg)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	healthHandler := handlers.NewHealthHandler(opts.Pinger)

	var users middleware.UserLookup
	if cfg.VerifyTokenUser {
		users = userService
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(reg.Middleware())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigin))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.APIKeyMiddleware(cfg.MetricsAPIKey), gin.WrapH(reg.Handler()))

	api := router.Group("/api")
	api.GET("/health", healthHandler.Health)

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens, users))

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/history", transactionHandler.GetHistory)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	protected.POST("/budgets/status", summaryHandler.BudgetStatus)
	protected.GET("/insights", summaryHandler.GetInsight)

	return router, nil
}
