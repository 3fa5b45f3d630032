package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/models"
	"alfredoptarigan/resume-refiner/internal/services"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingJobDescription):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrServiceUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error:  message,
		Detail: message,
		Code:   status,
	})
}

// failure renders a service error. Internal errors carry the operation
// prefix, client and availability errors are reported as they are.
func failure(c *fiber.Ctx, prefix string, err error) error {
	status := statusFor(err)
	switch status {
	case fiber.StatusInternalServerError:
		return errorResponse(c, status, fmt.Sprintf("%s: %v", prefix, err))
	case fiber.StatusServiceUnavailable:
		return errorResponse(c, status, fmt.Sprintf("Generation service is not available: %v", err))
	default:
		return errorResponse(c, status, err.Error())
	}
}

// ErrorHandler renders errors that escape handlers, including fiber's own.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return errorResponse(c, code, err.Error())
}
