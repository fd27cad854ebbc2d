package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/database"
	"github.com/mylanyard/server/internal/handlers"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/utils"
	"gorm.io/gorm"

	_ "github.com/mylanyard/server/docs/api" // Swagger docs
)

// @title My Lanyard API
// @version 1.0.0
// @description Lanyard, card, icon and tag service with per-user ownership

// @contact.name API Support
// @contact.url https://github.com/mylanyard/server

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

func main() {
	// Load .env when present, real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("mylanyard")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	registerRoutes(api, db, cfg)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// registerRoutes mounts all API routes. Entity groups run under OptionalUser
// so anonymous callers still see system assets; the service layer rejects
// anonymous mutation.
func registerRoutes(api fiber.Router, db *gorm.DB, cfg *config.Config) {
	// Session routes
	sessionHandler := &handlers.SessionHandler{DB: db, Cfg: cfg}
	session := api.Group("/session", middleware.OptionalUser(cfg, db))
	session.Get("/", sessionHandler.Restore)
	session.Post("/", sessionHandler.Login)
	session.Delete("/", sessionHandler.Logout)

	// User account routes
	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	api.Post("/users", userHandler.Signup)
	api.Patch("/users", middleware.RequireUser(cfg, db), userHandler.UpdateProfile)
	api.Patch("/users/password", middleware.RequireUser(cfg, db), userHandler.ChangePassword)

	// Icon routes
	iconHandler := &handlers.IconHandler{DB: db}
	icons := api.Group("/icons", middleware.OptionalUser(cfg, db))
	icons.Post("/", iconHandler.Create)
	icons.Get("/", iconHandler.List)
	icons.Get("/instance/:id", iconHandler.Get)
	icons.Patch("/instance/:id", iconHandler.Update)
	icons.Delete("/instance/:id", iconHandler.Delete)
	handlers.RegisterTaggingRoutes(icons, db, models.TargetIcon)

	// Card routes
	cardHandler := &handlers.CardHandler{DB: db}
	cards := api.Group("/cards", middleware.OptionalUser(cfg, db))
	cards.Post("/", cardHandler.Create)
	cards.Get("/", cardHandler.List)
	cards.Get("/instance/:id", cardHandler.Get)
	cards.Patch("/instance/:id", cardHandler.Update)
	cards.Delete("/instance/:id", cardHandler.Delete)
	handlers.RegisterTaggingRoutes(cards, db, models.TargetCard)

	// Lanyard routes
	lanyardHandler := &handlers.LanyardHandler{DB: db}
	lanyards := api.Group("/lanyards", middleware.OptionalUser(cfg, db))
	lanyards.Post("/", lanyardHandler.Create)
	lanyards.Get("/", lanyardHandler.List)
	lanyards.Get("/instance/:id", lanyardHandler.Get)
	lanyards.Patch("/instance/:id", lanyardHandler.Update)
	lanyards.Delete("/instance/:id", lanyardHandler.Delete)
	lanyards.Put("/instance/:id/cards", lanyardHandler.AssignCards)
	handlers.RegisterTaggingRoutes(lanyards, db, models.TargetLanyard)

	// Tag routes
	tagHandler := &handlers.TagHandler{DB: db}
	tags := api.Group("/tags", middleware.OptionalUser(cfg, db))
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Get("/instance/:id", tagHandler.Get)
	tags.Patch("/instance/:id", tagHandler.Update)
	tags.Delete("/instance/:id", tagHandler.Delete)

	// System asset routes, no session required
	systemHandler := &handlers.SystemAssetHandler{DB: db}
	system := api.Group("/system-assets")
	system.Get("/icons", systemHandler.Icons)
	system.Get("/icons/instance/:id", systemHandler.Icon)
	system.Get("/cards", systemHandler.Cards)
	system.Get("/cards/instance/:id", systemHandler.Card)
	system.Get("/lanyards", systemHandler.Lanyards)
	system.Get("/lanyards/instance/:id", systemHandler.Lanyard)
	system.Get("/tags", systemHandler.Tags)
	system.Get("/tags/instance/:id", systemHandler.Tag)
}
