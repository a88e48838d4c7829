package handlers

import (
	"brushworks/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AvailabilityHandler struct {
	Gallery *services.GalleryService
}

// Check reports whether an artwork can still be purchased. The purchase
// page calls this right before submitting, narrowing the window where a
// second buyer orders a piece that just sold.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	id := c.QueryInt("artwork")
	if id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing artwork id"})
	}
	p, err := h.Gallery.Get(int64(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "artwork not found"})
	}
	status := "AVAILABLE"
	if p.IsSold {
		status = "SOLD"
	}
	return c.JSON(fiber.Map{"status": status})
}
