package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Whillz7/BizFinTrackr/internal/config"
	"github.com/Whillz7/BizFinTrackr/internal/handler"
	"github.com/Whillz7/BizFinTrackr/internal/middleware"
	"github.com/Whillz7/BizFinTrackr/internal/model"
	"github.com/Whillz7/BizFinTrackr/internal/repository"
	"github.com/Whillz7/BizFinTrackr/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// Repositories
	ownerRepo := repository.NewOwnerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	inventoryRepo := repository.NewInventoryLogRepository(db)

	// Services
	authSvc := service.NewAuthService(ownerRepo, staffRepo, businessRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo, saleRepo, inventoryRepo, businessRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewReportService(saleRepo, expenseRepo, rdb,
		time.Duration(cfg.ReportCacheTTLSeconds)*time.Second)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	staffH := handler.NewStaffHandler(authSvc)
	productsH := handler.NewProductsHandler(catalogSvc)
	salesH := handler.NewSalesHandler(catalogSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Public
	r.GET("/health", healthH.Check)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/staff-login", middleware.LoginRateLimiter(), authH.StaffLogin)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	ownerOnly := middleware.RequireRole(model.RoleOwner)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/profile", authH.Profile)
		v1.PUT("/profile", authH.UpdateProfile)

		staff := v1.Group("/staff", ownerOnly)
		{
			staff.POST("", staffH.Create)
			staff.GET("", staffH.List)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.POST("/:id/restock", productsH.Restock)
			products.POST("/:id/sell", productsH.Sell)
			products.GET("/:id/inventory", productsH.InventoryHistory)
			products.DELETE("/:id", ownerOnly, productsH.Delete)
		}

		v1.GET("/sales", salesH.List)

		expenses := v1.Group("/expenses")
		{
			expenses.POST("", expensesH.Record)
			expenses.GET("", expensesH.List)
		}

		reports := v1.Group("/reports")
		{
			// Summary and recent activity feed the dashboard both roles see;
			// the breakdowns stay owner-only.
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/recent", reportsH.RecentActivity)
			reports.GET("/sales-by-product", ownerOnly, reportsH.SalesByProduct)
			reports.GET("/expenses-by-category", ownerOnly, reportsH.ExpensesByCategory)
		}
	}

	return r
}
