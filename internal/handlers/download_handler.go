package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-refiner/internal/services"
)

type DownloadHandler struct {
	refiner services.RefinerService
}

func NewDownloadHandler(refiner services.RefinerService) *DownloadHandler {
	return &DownloadHandler{refiner: refiner}
}

// HandleDownload handles GET and POST /download-refined-resume/:file_type
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	refinedText := c.Query("refined_text")
	if refinedText == "" {
		refinedText = c.FormValue("refined_text")
	}
	if refinedText == "" {
		return errorResponse(c, fiber.StatusBadRequest, "refined_text is required")
	}

	doc, err := h.refiner.RenderDocument(refinedText, c.Params("file_type"))
	if err != nil {
		return failure(c, "Failed to generate document", err)
	}

	c.Attachment(doc.Filename())
	c.Set(fiber.HeaderContentType, doc.ContentType)
	return c.Send(doc.Data)
}
