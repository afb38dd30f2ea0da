package router

import (
	"time"

	"gestorcash/internal/config"
	"gestorcash/internal/handler"
	"gestorcash/internal/infra"
	"gestorcash/internal/middleware"
	"gestorcash/internal/repository"
	"gestorcash/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
// rdb may be nil; mailer may be disabled.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute, rdb))

	// ── Repositories ─────────────────────────────────────────────────────────
	openingRepo := repository.NewOpeningCountRepository(db)
	closingRepo := repository.NewClosingCountRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	registerRepo := repository.NewCashRegisterRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	openingSvc := service.NewOpeningCountService(openingRepo)
	closingSvc := service.NewClosingCountService(closingRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewDailyReportService(reportRepo, infra.RenderReportPDF, mailer)
	userSvc := service.NewUserService(userRepo)
	storeSvc := service.NewStoreService(storeRepo)
	registerSvc := service.NewCashRegisterService(registerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	openingH := handler.NewOpeningHandler(openingSvc)
	closingH := handler.NewClosingHandler(closingSvc)
	expensesH := handler.NewExpenseHandler(expenseSvc)
	reportsH := handler.NewReportHandler(reportSvc)
	usersH := handler.NewUserHandler(userSvc)
	storesH := handler.NewStoreHandler(storeSvc, registerSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	health := handler.Health(db, rdb, mailer)
	r.GET("/", handler.Root)
	r.GET("/health", health)

	api := r.Group("/api")
	api.GET("/health", health)

	opening := api.Group("/opening")
	{
		opening.POST("", openingH.Create)
		opening.GET("", openingH.List)
		opening.GET("/:id", openingH.Get)
		opening.PUT("/:id", openingH.Update)
		opening.DELETE("/:id", openingH.Delete)
	}

	closing := api.Group("/closing")
	{
		closing.POST("", closingH.Create)
		closing.GET("", closingH.List)
		closing.GET("/:id", closingH.Get)
		closing.PUT("/:id", closingH.Update)
		closing.DELETE("/:id", closingH.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.POST("", expensesH.Create)
		expenses.GET("", expensesH.List)
		expenses.GET("/stats/by-category", expensesH.Stats)
		expenses.GET("/:id", expensesH.Get)
		expenses.PUT("/:id", expensesH.Update)
		expenses.DELETE("/:id", expensesH.Delete)
	}

	reports := api.Group("/reports")
	{
		reports.POST("", reportsH.Create)
		reports.GET("", reportsH.List)
		reports.GET("/:id", reportsH.Get)
		reports.PUT("/:id", reportsH.Update)
		reports.DELETE("/:id", reportsH.Delete)
		reports.GET("/:id/pdf", reportsH.PDF)
		reports.POST("/:id/email", reportsH.Email)
	}

	users := api.Group("/users")
	{
		users.POST("", usersH.Create)
		users.GET("", usersH.List)
		users.GET("/:uid", usersH.Get)
		users.PUT("/:uid", usersH.Update)
		users.DELETE("/:uid", usersH.Delete)
	}

	// Registers are registered before /:id so the static segment wins.
	stores := api.Group("/stores")
	{
		stores.POST("/registers", storesH.CreateRegister)
		stores.GET("/registers", storesH.ListRegisters)
		stores.GET("/registers/:id", storesH.GetRegister)
		stores.PUT("/registers/:id", storesH.UpdateRegister)
		stores.DELETE("/registers/:id", storesH.DeleteRegister)

		stores.POST("", storesH.Create)
		stores.GET("", storesH.List)
		stores.GET("/:id", storesH.Get)
		stores.PUT("/:id", storesH.Update)
		stores.DELETE("/:id", storesH.Delete)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
