package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"brushworks/internal/config"
	"brushworks/internal/domain"
	"brushworks/internal/http/handlers"
	"brushworks/internal/notify"
	"brushworks/internal/repos"
	"brushworks/internal/services"
	"brushworks/internal/storage"
)

func adminApp(t *testing.T) (*fiber.App, *repos.OrderRepo, *services.OrderService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	media, err := storage.NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	userRepo := repos.NewUserRepo(db)
	if err := userRepo.BindSession("admin-sid", "u-artist"); err != nil {
		t.Fatal(err)
	}
	authSvc := &services.AuthService{Users: userRepo}
	deps := handlers.NewDeps(db, config.Config{}, media, notify.NewBroker())

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/orders", deps.AdminHandler.OrdersPage)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/paintings", deps.AdminHandler.PaintingsPage)
	admin.Get("/paintings/:id/confirm", deps.AdminHandler.ConfirmPaintingAction)
	admin.Post("/paintings/:id/sold", deps.AdminHandler.SetSold)
	admin.Post("/paintings/:id/delete", deps.AdminHandler.DeletePainting)

	orderRepo := repos.NewOrderRepo(db)
	orderSvc := services.NewOrderService(orderRepo, repos.NewPaintingRepo(db), notify.NewBroker())
	return app, orderRepo, orderSvc
}

func adminGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "admin-sid"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func adminPost(t *testing.T, app *fiber.App, path string, form url.Values, csrfTok string) *http.Response {
	t.Helper()
	form.Set("csrf", csrfTok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: "admin-sid"})
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

var intakeBuyer = services.Buyer{
	Name: "A", Email: "a@x.com", Phone: "9990000000",
	Address: "12 MG Rd", City: "Pune", State: "MH", Pincode: "411001",
}

func TestAdminAdvancesOrderStatus(t *testing.T) {
	app, orderRepo, orderSvc := adminApp(t)

	o, err := orderSvc.Place(1, intakeBuyer)
	if err != nil {
		t.Fatal(err)
	}

	respList := adminGet(t, app, "/admin/orders")
	csrfTok := extractCookie(respList, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}
	body, _ := io.ReadAll(respList.Body)
	if !strings.Contains(string(body), "Mark as Paid") {
		t.Fatal("pending order missing its next action")
	}

	resp := adminPost(t, app, "/admin/orders/"+itoa(o.ID)+"/status",
		url.Values{"status": {"payment_received"}}, csrfTok)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after update, got %d", resp.StatusCode)
	}
	stored, err := orderRepo.Get(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.StatusPaymentReceived {
		t.Fatalf("status not advanced: %s", stored.Status)
	}
}

func TestAdminIllegalJumpRejected(t *testing.T) {
	app, orderRepo, orderSvc := adminApp(t)

	o, err := orderSvc.Place(1, intakeBuyer)
	if err != nil {
		t.Fatal(err)
	}
	respList := adminGet(t, app, "/admin/orders")
	csrfTok := extractCookie(respList, "csrf_")

	resp := adminPost(t, app, "/admin/orders/"+itoa(o.ID)+"/status",
		url.Values{"status": {"delivered"}}, csrfTok)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for illegal jump, got %d", resp.StatusCode)
	}
	stored, _ := orderRepo.Get(o.ID)
	if stored.Status != domain.StatusPendingPayment {
		t.Fatalf("status changed on rejected jump: %s", stored.Status)
	}
}

func TestAdminConfirmPageNamesArtwork(t *testing.T) {
	app, _, _ := adminApp(t)

	resp := adminGet(t, app, "/admin/paintings/1/confirm?action=sold")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 confirm page, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Monsoon Over the Ghats") || !strings.Contains(page, "Mark as Sold") {
		t.Fatal("confirm page does not name artwork and target state")
	}
}

func TestAdminToggleAndDeleteFlow(t *testing.T) {
	app, _, _ := adminApp(t)

	respList := adminGet(t, app, "/admin/paintings")
	csrfTok := extractCookie(respList, "csrf_")

	// mark painting 1 sold
	resp := adminPost(t, app, "/admin/paintings/1/sold", url.Values{"sold": {"true"}}, csrfTok)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after toggle, got %d", resp.StatusCode)
	}

	// delete painting 2 (image object missing; record delete still wins)
	resp = adminPost(t, app, "/admin/paintings/2/delete", url.Values{}, csrfTok)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after delete, got %d", resp.StatusCode)
	}

	respAfter := adminGet(t, app, "/admin/paintings")
	body, _ := io.ReadAll(respAfter.Body)
	if strings.Contains(string(body), "Marigold Morning") {
		t.Fatal("deleted painting still listed")
	}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
