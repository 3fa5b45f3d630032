package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/models"
	"alfredoptarigan/resume-refiner/internal/services"
)

type InterviewHandler struct {
	refiner services.RefinerService
}

func NewInterviewHandler(refiner services.RefinerService) *InterviewHandler {
	return &InterviewHandler{refiner: refiner}
}

// HandleGenerateQA handles POST /generate-interview-qa
func (h *InterviewHandler) HandleGenerateQA(c *fiber.Ctx) error {
	var req models.InterviewQARequest

	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "company_name is required")
	}

	if strings.TrimSpace(req.RoleTitle) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "role_title is required")
	}

	resp, err := h.refiner.GenerateInterviewQA(c.UserContext(), req)
	if err != nil {
		return failure(c, "Failed to process request", err)
	}

	return c.JSON(resp)
}
