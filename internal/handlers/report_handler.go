package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/models"
	"alfredoptarigan/resume-refiner/internal/services"
)

type ReportHandler struct {
	refiner services.RefinerService
}

func NewReportHandler(refiner services.RefinerService) *ReportHandler {
	return &ReportHandler{refiner: refiner}
}

// HandleMatchReport handles POST /match-report
func (h *ReportHandler) HandleMatchReport(c *fiber.Ctx) error {
	var req models.MatchReportRequest

	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	data, err := h.refiner.BuildMatchReport(req.JobDescription, req.ResumeText)
	if err != nil {
		return failure(c, "Failed to build match report", err)
	}

	c.Attachment(services.MatchReportFilename)
	c.Set(fiber.HeaderContentType, services.ContentTypeXLSX)
	return c.Send(data)
}
