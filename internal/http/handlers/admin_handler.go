package handlers

import (
	"brushworks/internal/domain"
	applog "brushworks/internal/log"
	"brushworks/internal/repos"
	"brushworks/internal/services"
	"brushworks/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Paintings *services.PaintingService
	Gallery   *services.GalleryService
	Orders    *services.OrderService
	OrderRepo *repos.OrderRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	var counts services.Counts
	if _, got, err := h.Gallery.Browse(services.FilterAll); err == nil {
		counts = got
	}
	return render(c, "admin_dashboard", fiber.Map{"Counts": counts})
}

// GET /admin/paintings/new
func (h *AdminHandler) NewPaintingForm(c *fiber.Ctx) error {
	return render(c, "admin_add_painting", fiber.Map{"Err": ""})
}

// POST /admin/paintings
func (h *AdminHandler) CreatePainting(c *fiber.Ctx) error {
	title, okTitle := validate.Title(c.FormValue("title"))
	price, okPrice := validate.Price(c.FormValue("price"))
	if !okTitle || !okPrice {
		return c.Status(fiber.StatusBadRequest).Render("admin_add_painting", fiber.Map{"Err": "Title and a non-negative price are required.", "CSRFToken": c.Cookies("csrf_")})
	}
	image, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin_add_painting", fiber.Map{"Err": "Please attach an image of the artwork.", "CSRFToken": c.Cookies("csrf_")})
	}

	p := domain.Painting{
		Title:       title,
		Description: validate.Text(c.FormValue("description"), 2000),
		Dimensions:  validate.Text(c.FormValue("dimensions"), 60),
		Price:       price,
	}
	id, err := h.Paintings.Add(p, image)
	if err != nil {
		applog.Error(c, "admin.paintings.add.fail", err, map[string]any{"title": title})
		return c.Status(fiber.StatusBadRequest).Render("admin_add_painting", fiber.Map{"Err": "Could not save the artwork. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}
	applog.Audit(c, "admin.paintings.add", map[string]any{"painting_id": id, "title": title})
	return c.Redirect("/admin/paintings")
}

// GET /admin/paintings
func (h *AdminHandler) PaintingsPage(c *fiber.Ctx) error {
	paintings, counts, err := h.Gallery.Browse(services.FilterAll)
	if err != nil {
		applog.Error(c, "admin.paintings.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load artworks"})
	}
	return render(c, "admin_paintings", fiber.Map{"Paintings": paintings, "Counts": counts})
}

// GET /admin/paintings/:id/confirm?action=delete|sold|available
//
// Both destructive actions go through this page: it names the artwork
// and the target state, and its confirm button posts the real mutation.
func (h *AdminHandler) ConfirmPaintingAction(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}
	p, err := h.Gallery.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Artwork not found"})
	}

	var title, message, action string
	switch c.Query("action") {
	case "delete":
		title, action = "Delete Artwork", "delete"
		message = "Are you sure you want to delete \"" + p.Title + "\"? This action cannot be undone."
	case "sold":
		title, action = "Mark as Sold", "sold"
		message = "Mark \"" + p.Title + "\" as sold?"
	case "available":
		title, action = "Mark as Available", "available"
		message = "Mark \"" + p.Title + "\" as available again?"
	default:
		return c.Redirect("/admin/paintings")
	}
	return render(c, "admin_confirm", fiber.Map{
		"Painting": p,
		"Title":    title,
		"Message":  message,
		"Action":   action,
	})
}

// POST /admin/paintings/:id/sold
func (h *AdminHandler) SetSold(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	sold := c.FormValue("sold") == "true"
	if err := h.Paintings.SetSold(id, sold); err != nil {
		applog.Error(c, "admin.paintings.sold.fail", err, map[string]any{"painting_id": id, "sold": sold})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Could not update artwork status. Please try again."})
	}
	applog.Audit(c, "admin.paintings.sold", map[string]any{"painting_id": id, "sold": sold})
	return c.Redirect("/admin/paintings")
}

// POST /admin/paintings/:id/delete
//
// Image-object cleanup failures are logged and accepted; only a failed
// record delete is reported back, leaving the row listed.
func (h *AdminHandler) DeletePainting(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	cleanup, err := h.Paintings.Delete(id)
	if cleanup != nil {
		applog.Warn(c, "admin.paintings.media.orphan", cleanup, map[string]any{"painting_id": id})
	}
	if err != nil {
		applog.Error(c, "admin.paintings.delete.fail", err, map[string]any{"painting_id": id})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Could not delete the artwork. Please try again."})
	}
	applog.Audit(c, "admin.paintings.delete", map[string]any{"painting_id": id})
	return c.Redirect("/admin/paintings")
}

// orderView pairs an order with the actions the transition table allows
// from its current state, so templates never compute legality.
type orderView struct {
	domain.Order
	NextStatus string
	NextLabel  string
	CanCancel  bool
}

func viewForOrder(o domain.Order) orderView {
	v := orderView{Order: o, CanCancel: o.Status.CanTransition(domain.StatusCancelled)}
	if next, ok := o.Status.Next(); ok {
		v.NextStatus = string(next)
		switch next {
		case domain.StatusPaymentReceived:
			v.NextLabel = "Mark as Paid"
		case domain.StatusProcessing:
			v.NextLabel = "Start Processing"
		case domain.StatusShipped:
			v.NextLabel = "Mark as Shipped"
		case domain.StatusDelivered:
			v.NextLabel = "Mark as Delivered"
		}
	}
	return v
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	orders, err := h.OrderRepo.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, viewForOrder(o))
	}
	return render(c, "admin_orders", fiber.Map{"Orders": views})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := domain.Status(c.FormValue("status"))
	if !ok || status == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing id or status")
	}
	if _, err := h.Orders.Transition(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id, "status": string(status)})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Could not update the order status. Please reload and try again."})
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": string(status)})
	return c.Redirect("/admin/orders")
}
