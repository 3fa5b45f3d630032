package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/repositories"
	"alfredoptarigan/resume-refiner/internal/services"
)

// SetupRoutes mounts the API at the root path. History routes are only
// mounted when a history repository is available.
func SetupRoutes(
	app *fiber.App,
	refiner services.RefinerService,
	history repositories.RefinementRepository,
	maxFileSize int64,
) {
	refineHandler := NewRefineHandler(refiner, maxFileSize)
	downloadHandler := NewDownloadHandler(refiner)
	interviewHandler := NewInterviewHandler(refiner)
	reportHandler := NewReportHandler(refiner)

	endpoints := []string{
		"POST /refine-resume",
		"GET /download-refined-resume/:file_type",
		"POST /generate-interview-qa",
		"POST /match-report",
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Post("/refine-resume", refineHandler.HandleRefine)
	app.Get("/download-refined-resume/:file_type", downloadHandler.HandleDownload)
	app.Post("/download-refined-resume/:file_type", downloadHandler.HandleDownload)
	app.Post("/generate-interview-qa", interviewHandler.HandleGenerateQA)
	app.Post("/match-report", reportHandler.HandleMatchReport)

	if history != nil {
		historyHandler := NewHistoryHandler(history)
		app.Get("/refinements", historyHandler.HandleList)
		app.Get("/refinements/:id", historyHandler.HandleGet)
		endpoints = append(endpoints, "GET /refinements", "GET /refinements/:id")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Resume Refiner API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
