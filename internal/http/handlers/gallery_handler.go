package handlers

import (
	applog "brushworks/internal/log"
	"brushworks/internal/services"

	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	Gallery *services.GalleryService
}

// Home shows the six most recent artworks; the page listens on the
// paintings event stream and reloads itself on changes.
func (h *GalleryHandler) Home(c *fiber.Ctx) error {
	paintings, err := h.Gallery.Home()
	if err != nil {
		applog.Error(c, "gallery.home.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load artworks. Please try again."})
	}
	return render(c, "home", fiber.Map{"Paintings": paintings})
}

// Browse is the full gallery with the all/available/sold filter tabs.
func (h *GalleryHandler) Browse(c *fiber.Ctx) error {
	f := services.ParseFilter(c.Query("filter"))
	paintings, counts, err := h.Gallery.Browse(f)
	if err != nil {
		applog.Error(c, "gallery.browse.fail", err, map[string]any{"filter": string(f)})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load the gallery. Please try again."})
	}
	return render(c, "gallery", fiber.Map{
		"Paintings": paintings,
		"Counts":    counts,
		"Filter":    string(f),
	})
}

// Detail shows one artwork with the purchase form when it is unsold.
func (h *GalleryHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}
	p, err := h.Gallery.Get(int64(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}
	return render(c, "painting", fiber.Map{"Painting": p})
}
