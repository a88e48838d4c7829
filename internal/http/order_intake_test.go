package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"brushworks/internal/config"
	"brushworks/internal/http/handlers"
	"brushworks/internal/notify"
	"brushworks/internal/repos"
	"brushworks/internal/storage"
)

func storefrontApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	media, err := storage.NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{Payment: config.Payment{
		BankName: "Test Bank", AccountName: "Artist", AccountNumber: "123", IFSC: "TEST0000001", UPIID: "artist@upi",
	}}
	deps := handlers.NewDeps(db, cfg, media, notify.NewBroker())

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	app.Get("/", deps.GalleryHandler.Home)
	app.Get("/gallery", deps.GalleryHandler.Browse)
	app.Get("/artwork/:id", deps.GalleryHandler.Detail)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/api/v1/availability", deps.AvailabilityHandler.Check)
	return app
}

func orderForm(paintingID, csrfTok string) url.Values {
	return url.Values{
		"csrf":        {csrfTok},
		"painting_id": {paintingID},
		"name":        {"A"},
		"email":       {"a@x.com"},
		"phone":       {"9990000000"},
		"address":     {"12 MG Rd"},
		"city":        {"Pune"},
		"state":       {"MH"},
		"pincode":     {"411001"},
	}
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, csrfTok string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestPlaceOrderRendersPaymentInstructions(t *testing.T) {
	app := storefrontApp(t)

	respHome, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	csrfTok := extractCookie(respHome, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	// seeded painting 1 is available
	resp := postForm(t, app, "/orders", orderForm("1", csrfTok), csrfTok)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 confirmation, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	for _, want := range []string{"ART0001", "Test Bank", "artist@upi", "Payment Instructions"} {
		if !strings.Contains(page, want) {
			t.Fatalf("confirmation page missing %q", want)
		}
	}
}

func TestPlaceOrderSoldArtworkRejected(t *testing.T) {
	app := storefrontApp(t)

	respHome, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	csrfTok := extractCookie(respHome, "csrf_")

	// seeded painting 3 is sold
	resp := postForm(t, app, "/orders", orderForm("3", csrfTok), csrfTok)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for sold artwork, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "sold") {
		t.Fatal("error notice missing")
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	app := storefrontApp(t)

	respHome, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	csrfTok := extractCookie(respHome, "csrf_")

	bad := orderForm("1", csrfTok)
	bad.Set("pincode", "4110")
	resp := postForm(t, app, "/orders", bad, csrfTok)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad pincode, got %d", resp.StatusCode)
	}

	missing := orderForm("1", csrfTok)
	missing.Del("name")
	resp = postForm(t, app, "/orders", missing, csrfTok)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", resp.StatusCode)
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	app := storefrontApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/availability?artwork=1", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "AVAILABLE") {
		t.Fatalf("want AVAILABLE, got %d %s", resp.StatusCode, body)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/availability?artwork=3", nil))
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "SOLD") {
		t.Fatalf("want SOLD, got %s", body)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/api/v1/availability?artwork=999", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown artwork, got %d", resp.StatusCode)
	}
}

func TestGalleryFilterTabs(t *testing.T) {
	app := storefrontApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/gallery?filter=sold", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Old City Lanes") {
		t.Fatal("sold painting missing from sold filter")
	}
	if strings.Contains(page, "Monsoon Over the Ghats") {
		t.Fatal("available painting leaked into sold filter")
	}
}
