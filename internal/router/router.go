package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/config"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/handler"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/middleware"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/service"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← SnapshotStore
func New(cfg *config.Config, st *store.Store, snap infra.SnapshotStore, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewServiceCatalogService(st)
	productSvc := service.NewProductService(st, dispatcher)
	clientSvc := service.NewClientService(st)
	providerSvc := service.NewProviderService(st)
	inventorySvc := service.NewInventoryService(st, dispatcher)
	financeSvc := service.NewFinanceService(st, dispatcher)
	importSvc := service.NewImportService(st)
	exportSvc := service.NewExportService(st)
	sessionSvc := service.NewSessionService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	servicesH := handler.NewServicesHandler(catalogSvc)
	productsH := handler.NewProductsHandler(productSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	providersH := handler.NewProvidersHandler(providerSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	financeH := handler.NewFinanceHandler(financeSvc)
	importsH := handler.NewImportsHandler(importSvc)
	exportsH := handler.NewExportsHandler(exportSvc)
	sessionH := handler.NewSessionHandler(sessionSvc, st)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(snap, rdb))

	// Role gates mirror the dashboard tabs: finance and clients belong to the
	// cash desk, catalogs to inventory management, stock to everyone, imports
	// to the administrator alone.
	cashDesk := middleware.RequireRole(st, model.RoleAdmin, model.RoleCashier)
	stockroom := middleware.RequireRole(st, model.RoleAdmin, model.RoleInventory)
	anyRole := middleware.RequireRole(st, model.RoleAdmin, model.RoleCashier, model.RoleInventory)
	adminOnly := middleware.RequireRole(st, model.RoleAdmin)

	v1 := r.Group("/v1")
	{
		// Session
		v1.GET("/role", sessionH.Role)
		v1.PUT("/role", sessionH.SetRole)
		v1.GET("/state", anyRole, sessionH.State)
		v1.POST("/reset", adminOnly, sessionH.Reset)

		services := v1.Group("/services", stockroom)
		{
			services.GET("", servicesH.List)
			services.POST("", servicesH.Create)
			services.PUT("/:id", servicesH.Update)
			services.DELETE("/:id", servicesH.Delete)
		}

		products := v1.Group("/products", stockroom)
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		providers := v1.Group("/providers", stockroom)
		{
			providers.GET("", providersH.List)
			providers.POST("", providersH.Create)
			providers.PUT("/:id", providersH.Update)
			providers.DELETE("/:id", providersH.Delete)
		}

		clients := v1.Group("/clients", cashDesk)
		{
			clients.GET("", clientsH.List)
			clients.POST("", clientsH.Create)
			clients.PUT("/:id", clientsH.Update)
			clients.DELETE("/:id", clientsH.Delete)
			clients.GET("/:id/history", clientsH.History)
		}

		inventory := v1.Group("/inventory", anyRole)
		{
			inventory.GET("", inventoryH.Items)
			inventory.GET("/movements", inventoryH.Movements)
			inventory.GET("/alerts", inventoryH.Alerts)
			inventory.POST("/movements", inventoryH.RegisterMovement)
		}

		finance := v1.Group("/transactions", cashDesk)
		{
			finance.GET("", financeH.List)
			finance.POST("", financeH.Commit)
			finance.PUT("/:id", financeH.Update)
			finance.DELETE("/:id", financeH.Delete)
		}
		v1.POST("/cart/preview", cashDesk, financeH.CartPreview)
		v1.GET("/dashboard", anyRole, financeH.Summary)

		v1.POST("/imports/:target", adminOnly, importsH.Run)
		v1.GET("/exports/:target", adminOnly, exportsH.Collection)
		v1.GET("/reports/monthly", adminOnly, exportsH.MonthlyReport)
		v1.GET("/reports/monthly/pdf", adminOnly, exportsH.MonthlyReportPDF)
	}

	return r
}
