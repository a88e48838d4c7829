package handlers

import (
	"errors"

	"brushworks/internal/config"
	applog "brushworks/internal/log"
	"brushworks/internal/services"
	"brushworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Order   *services.OrderService
	Gallery *services.GalleryService
	Pay     config.Payment
}

// Place handles the purchase form submitted from an artwork page. On
// success the confirmation page is rendered directly with the order
// reference and the offline payment instructions; nothing is persisted
// on failure.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	paintingID, ok := validate.ID(c.FormValue("painting_id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}

	buyer, field, ok := buyerFromForm(c)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return h.rerender(c, paintingID, "Please check the "+field+" field and try again.")
	}

	o, err := h.Order.Place(paintingID, buyer)
	if err != nil {
		if errors.Is(err, services.ErrArtworkSold) {
			applog.Info(c, "order.place.sold", map[string]any{"painting_id": paintingID})
			return h.rerender(c, paintingID, "This artwork has just been sold and can no longer be ordered.")
		}
		applog.Error(c, "order.place.fail", err, map[string]any{"painting_id": paintingID})
		return h.rerender(c, paintingID, "Could not place your order. Please try again.")
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": o.ID, "painting_id": o.PaintingID})
	return render(c, "order_confirm", fiber.Map{"Order": o, "Pay": h.Pay})
}

// rerender shows the artwork page again with an error notice, keeping
// the previously displayed state intact.
func (h *OrderHandler) rerender(c *fiber.Ctx, paintingID int64, msg string) error {
	p, err := h.Gallery.Get(paintingID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}
	return c.Status(fiber.StatusBadRequest).Render("painting", fiber.Map{
		"Painting":  p,
		"Err":       msg,
		"CSRFToken": c.Cookies("csrf_"),
	})
}

func buyerFromForm(c *fiber.Ctx) (services.Buyer, string, bool) {
	var b services.Buyer
	var ok bool
	if b.Name, ok = validate.Name(c.FormValue("name")); !ok {
		return b, "name", false
	}
	if b.Email, ok = validate.Email(c.FormValue("email")); !ok {
		return b, "email", false
	}
	if b.Phone, ok = validate.Phone(c.FormValue("phone")); !ok {
		return b, "phone", false
	}
	if b.Address, ok = validate.Line(c.FormValue("address"), 200); !ok {
		return b, "address", false
	}
	if b.City, ok = validate.Line(c.FormValue("city"), 60); !ok {
		return b, "city", false
	}
	if b.State, ok = validate.Line(c.FormValue("state"), 60); !ok {
		return b, "state", false
	}
	if b.Pincode, ok = validate.Pincode(c.FormValue("pincode")); !ok {
		return b, "pincode", false
	}
	b.Message = validate.Text(c.FormValue("message"), 1000)
	return b, "", true
}
