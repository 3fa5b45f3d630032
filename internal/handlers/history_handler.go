package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-refiner/internal/models"
	"alfredoptarigan/resume-refiner/internal/repositories"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	history repositories.RefinementRepository
}

func NewHistoryHandler(history repositories.RefinementRepository) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// HandleList handles GET /refinements
func (h *HistoryHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}

	records, err := h.history.FindRecent(limit)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load refinements")
	}

	if records == nil {
		records = []models.RefinementRecord{}
	}

	return c.JSON(fiber.Map{
		"refinements": records,
	})
}

// HandleGet handles GET /refinements/:id
func (h *HistoryHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid refinement ID format")
	}

	record, err := h.history.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRefinementNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Refinement not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load refinement")
	}

	return c.JSON(record)
}
