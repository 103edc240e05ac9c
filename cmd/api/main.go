package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-storemap-api/internal/config"
	"go-storemap-api/internal/handler"
	"go-storemap-api/internal/middleware"
	"go-storemap-api/internal/model"
	"go-storemap-api/internal/repository"
	"go-storemap-api/internal/service"
	"go-storemap-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Setup Database
	db := database.Connect(cfg.DSN())
	db.AutoMigrate(&model.Product{}, &model.Location{}, &model.InventoryRecord{}, &model.User{})

	// 3. Seed default admin user
	seedDefaultAdmin(db)

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	userRepo := repository.NewUserRepo(db)

	mapService := service.NewMapService(productRepo, locationRepo, inventoryRepo)
	catalogService := service.NewCatalogService(productRepo, locationRepo, inventoryRepo, db, mapService)
	authService := service.NewAuthService(userRepo)

	mapHandler := handler.NewMapHandler(mapService)
	dashHandler := handler.NewDashboardHandler(mapService)
	productHandler := handler.NewProductHandler(catalogService)
	locationHandler := handler.NewLocationHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Initial snapshot load (map endpoints lazy-load on miss anyway)
	if err := mapService.Refresh(); err != nil {
		log.Printf("Warning: initial snapshot load failed: %v", err)
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Storefront Map API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	// Map endpoints (no authentication; consumed by the visitor UI)
	api.Get("/locations", mapHandler.GetLocations)
	api.Get("/locations/:id/products", mapHandler.GetLocationProducts)
	api.Get("/categories", mapHandler.GetCategories)

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	// ============ ADMIN ROUTES ============
	// All routes below require authentication
	admin := api.Group("/admin", middleware.RequireAuth(userRepo))

	admin.Get("/stats", dashHandler.GetStats)

	admin.Get("/products", productHandler.GetProducts)
	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Get("/locations", locationHandler.GetLocations)
	admin.Post("/locations", locationHandler.CreateLocation)
	admin.Put("/locations/:id", locationHandler.UpdateLocation)
	admin.Delete("/locations/:id", locationHandler.DeleteLocation)

	admin.Get("/inventory", inventoryHandler.GetInventory)
	admin.Post("/inventory", inventoryHandler.AddInventory)
	admin.Put("/inventory/:id", inventoryHandler.UpdateStock)
	admin.Delete("/inventory/:id", inventoryHandler.DeleteInventory)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaultAdmin creates the default admin user if no user exists yet
func seedDefaultAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
