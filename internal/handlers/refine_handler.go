package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/services"
)

type RefineHandler struct {
	refiner     services.RefinerService
	maxFileSize int64
}

func NewRefineHandler(refiner services.RefinerService, maxFileSize int64) *RefineHandler {
	return &RefineHandler{
		refiner:     refiner,
		maxFileSize: maxFileSize,
	}
}

// HandleRefine handles POST /refine-resume
func (h *RefineHandler) HandleRefine(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Resume file is required")
	}

	if fileHeader.Size > h.maxFileSize {
		return errorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to process request: failed to open upload: %v", err))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to process request: failed to read upload: %v", err))
	}

	result, err := h.refiner.Refine(c.UserContext(), services.RefineInput{
		Filename:            fileHeader.Filename,
		Data:                data,
		JobDescription:      c.FormValue("job_description"),
		JobDescriptionURL:   c.FormValue("job_description_url"),
		GenerateCoverLetter: parseFormBool(c.FormValue("generate_cover_letter")),
	})
	if err != nil {
		return failure(c, "Failed to process request", err)
	}

	return c.JSON(result)
}

func parseFormBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
