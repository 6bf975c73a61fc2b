package routes

import (
	"pharmastock/internal/adapters/http/handlers"
	"pharmastock/internal/adapters/http/middleware"
	"pharmastock/internal/adapters/persistence/repositories"
	"pharmastock/internal/config"
	"pharmastock/internal/core/services"
	"pharmastock/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup wires repositories, services, and handlers, and declares every
// route together with its access policy. This table is the single place
// authorization is configured; handlers never check roles themselves.
func Setup(app *fiber.App, db *gorm.DB, sessions session.Store, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	medicineRepo := repositories.NewMedicineRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, sessions)
	inventoryService := services.NewInventoryService(medicineRepo)
	referenceService := services.NewReferenceService(supplierRepo, categoryRepo)
	reportService := services.NewReportService(medicineRepo)
	alertService := services.NewAlertService(medicineRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	pageHandler := handlers.NewPageHandler()
	medicineHandler := handlers.NewMedicineHandler(inventoryService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	dashboardHandler := handlers.NewDashboardHandler(inventoryService, alertService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Session resolution runs on every request; the policies below only
	// read what it put in locals.
	app.Use(middleware.ResolveSession(sessions))

	authAny := middleware.Authenticated()
	adminOnly := middleware.AdminOnly()

	// Public
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/login", pageHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/signup", authHandler.Signup)
	app.Get("/logout", authHandler.Logout)

	// Pages
	app.Get("/", middleware.AdminPage(), pageHandler.Home)
	app.Get("/stock_dashboard", middleware.StockDashboardPage(), pageHandler.StockDashboard)

	// Medicines
	app.Get("/medicines", authAny, medicineHandler.List)
	app.Get("/medicines-in-stock", authAny, medicineHandler.ListInStock)
	app.Post("/medicines", adminOnly, medicineHandler.Create)
	app.Put("/medicines/:id", adminOnly, medicineHandler.Update)
	app.Delete("/medicines/:id", adminOnly, medicineHandler.Delete)
	app.Get("/search", authAny, medicineHandler.Search)

	// Reference data
	app.Get("/suppliers", authAny, referenceHandler.ListSuppliers)
	app.Post("/suppliers", adminOnly, referenceHandler.AddSupplier)
	app.Get("/categories", authAny, referenceHandler.ListCategories)

	// Reporting
	app.Get("/dashboard-stats", authAny, dashboardHandler.Stats)
	app.Get("/alerts", authAny, dashboardHandler.Alerts)
	app.Get("/report/stock", authAny, reportHandler.StockReport)
}
