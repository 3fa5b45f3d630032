package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/resume-refiner/internal/config"
	"alfredoptarigan/resume-refiner/internal/handlers"
	"alfredoptarigan/resume-refiner/internal/repositories"
	"alfredoptarigan/resume-refiner/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Refinement history is optional
	var historyRepo repositories.RefinementRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		historyRepo = repositories.NewRefinementRepository(db)
		log.Println("✅ Refinement history enabled")
	}

	// Initialize generation client; a missing key degrades LLM endpoints to 503
	ctx := context.Background()
	generator, err := services.NewGenerator(ctx, cfg.Generation)
	if err != nil {
		log.Printf("⚠️ Generation service unavailable: %v", err)
		generator = services.NewUnavailableGenerator(err)
	} else {
		log.Printf("✅ Generation client initialized (%s)", cfg.Generation.Provider)
	}

	// Initialize services
	refinerService := services.NewRefinerService(
		services.NewDocumentCodec(),
		services.NewJobDescriptionFetcher(cfg.Fetcher),
		generator,
		services.NewMatchReportExporter(),
		historyRepo,
	)
	log.Println("✅ Services initialized successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:        "Resume Refiner API",
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		BodyLimit:      int(cfg.Storage.MaxFileSize),
		ReadBufferSize: 64 * 1024,
		ErrorHandler:   handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.Server.AllowedOrigins != "*",
	}))

	// Routes
	handlers.SetupRoutes(app, refinerService, historyRepo, cfg.Storage.MaxFileSize)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
