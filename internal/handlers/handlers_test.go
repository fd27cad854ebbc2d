package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/handlers"
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/testutil"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app with the API routes wired the way the server
// binary wires them.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := testutil.OpenDB(t)
	cfg := &config.Config{SessionSecret: "test-secret", SessionTTL: time.Hour}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	api := app.Group("/api")

	sessionHandler := &handlers.SessionHandler{DB: db, Cfg: cfg}
	session := api.Group("/session", middleware.OptionalUser(cfg, db))
	session.Get("/", sessionHandler.Restore)
	session.Post("/", sessionHandler.Login)
	session.Delete("/", sessionHandler.Logout)

	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	api.Post("/users", userHandler.Signup)
	api.Patch("/users", middleware.RequireUser(cfg, db), userHandler.UpdateProfile)
	api.Patch("/users/password", middleware.RequireUser(cfg, db), userHandler.ChangePassword)

	iconHandler := &handlers.IconHandler{DB: db}
	icons := api.Group("/icons", middleware.OptionalUser(cfg, db))
	icons.Post("/", iconHandler.Create)
	icons.Get("/", iconHandler.List)
	icons.Get("/instance/:id", iconHandler.Get)
	icons.Patch("/instance/:id", iconHandler.Update)
	icons.Delete("/instance/:id", iconHandler.Delete)
	handlers.RegisterTaggingRoutes(icons, db, models.TargetIcon)

	tagHandler := &handlers.TagHandler{DB: db}
	tags := api.Group("/tags", middleware.OptionalUser(cfg, db))
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)

	lanyardHandler := &handlers.LanyardHandler{DB: db}
	lanyards := api.Group("/lanyards", middleware.OptionalUser(cfg, db))
	lanyards.Post("/", lanyardHandler.Create)
	lanyards.Put("/instance/:id/cards", lanyardHandler.AssignCards)

	systemHandler := &handlers.SystemAssetHandler{DB: db}
	system := api.Group("/system-assets")
	system.Get("/icons", systemHandler.Icons)
	system.Get("/icons/instance/:id", systemHandler.Icon)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// signup creates an account through the API and returns the session cookie.
func signup(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/users", map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "s3cret!",
	}, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected signup 200, got %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	t.Fatal("Expected session cookie on signup")
	return nil
}

func TestSignupSetsSession(t *testing.T) {
	app, _ := setupApp(t)
	cookie := signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "GET", "/api/session/", nil, cookie)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected restore 200, got %d", resp.StatusCode)
	}

	var session map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	if session["email"] != "ada@example.com" {
		t.Errorf("Expected session email, got %v", session["email"])
	}
	if session["token"] == nil {
		t.Error("Expected a token in the session response")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)
	signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "POST", "/api/users", map[string]string{
		"firstName": "Test",
		"lastName":  "User",
		"email":     "ada@example.com",
		"password":  "s3cret!",
	}, nil)
	if resp.StatusCode != 409 {
		t.Errorf("Expected 409, got %d", resp.StatusCode)
	}
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/users", map[string]string{
		"firstName": "Test",
		"email":     "not-an-email",
		"password":  "x",
	}, nil)
	if resp.StatusCode != 400 {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["type"] != "validation" {
		t.Errorf("Expected validation error type, got %v", body["type"])
	}
	if body["errors"] == nil {
		t.Error("Expected structured error reasons")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupApp(t)
	signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "POST", "/api/session/", map[string]string{
		"credential": "ada@example.com",
		"password":   "wrong-password",
	}, nil)
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionRestoreAnonymous(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/session/", nil, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var session interface{}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if session != nil {
		t.Errorf("Expected null session, got %v", session)
	}
}

func TestCreateIconRequiresSession(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/icons/", map[string]string{
		"name":     "star",
		"imageUrl": "https://example.com/star.svg",
	}, nil)
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

func TestIconCRUDStatusCodes(t *testing.T) {
	app, _ := setupApp(t)
	cookie := signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "POST", "/api/icons/", map[string]string{
		"name":     "star",
		"imageUrl": "https://example.com/star.svg",
	}, cookie)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	var icon models.Icon
	if err := json.NewDecoder(resp.Body).Decode(&icon); err != nil {
		t.Fatalf("Failed to decode icon: %v", err)
	}

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/icons/instance/%d", icon.ID), nil, cookie)
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	// Another session cannot see it.
	other := signup(t, app, "grace@example.com")
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/icons/instance/%d", icon.ID), nil, other)
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404 for foreign icon, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/icons/instance/%d", icon.ID), nil, cookie)
	if resp.StatusCode != 204 {
		t.Errorf("Expected 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "GET", "/api/icons/instance/not-a-number", nil, cookie)
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}

func TestSystemIconImmutableViaAPI(t *testing.T) {
	app, db := setupApp(t)
	cookie := signup(t, app, "ada@example.com")

	stock := models.Icon{
		Name:     "stock",
		ImageURL: "https://example.com/stock.svg",
		AuthorID: identity.SystemStorageID,
	}
	if err := db.Create(&stock).Error; err != nil {
		t.Fatalf("Failed to create system icon: %v", err)
	}

	// Readable by anyone, also without a session.
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/icons/instance/%d", stock.ID), nil, nil)
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200 for system icon, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "PATCH", fmt.Sprintf("/api/icons/instance/%d", stock.ID), map[string]string{
		"name": "mine",
	}, cookie)
	if resp.StatusCode != 403 {
		t.Errorf("Expected 403 for system icon edit, got %d", resp.StatusCode)
	}
}

func TestTaggingRoutes(t *testing.T) {
	app, _ := setupApp(t)
	cookie := signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "POST", "/api/icons/", map[string]string{
		"name":     "star",
		"imageUrl": "https://example.com/star.svg",
	}, cookie)
	var icon models.Icon
	if err := json.NewDecoder(resp.Body).Decode(&icon); err != nil {
		t.Fatalf("Failed to decode icon: %v", err)
	}

	resp = doJSON(t, app, "POST", "/api/tags/", map[string]string{"name": "favorites"}, cookie)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201 creating tag, got %d", resp.StatusCode)
	}
	var tag models.Tag
	if err := json.NewDecoder(resp.Body).Decode(&tag); err != nil {
		t.Fatalf("Failed to decode tag: %v", err)
	}

	// Attach.
	resp = doJSON(t, app, "POST", fmt.Sprintf("/api/icons/tagging/%d", tag.ID), map[string]uint64{
		"instanceId": icon.ID,
	}, cookie)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201 creating tagging, got %d", resp.StatusCode)
	}

	// Listed on the instance.
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/icons/instance/%d/taggings", icon.ID), nil, cookie)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200 listing taggings, got %d", resp.StatusCode)
	}
	var taggings []models.Tagging
	if err := json.NewDecoder(resp.Body).Decode(&taggings); err != nil {
		t.Fatalf("Failed to decode taggings: %v", err)
	}
	if len(taggings) != 1 {
		t.Fatalf("Expected 1 tagging, got %d", len(taggings))
	}

	// Reconcile away.
	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/icons/instance/%d/taggings", icon.ID), map[string][]uint64{
		"toRemove": {tag.ID},
	}, cookie)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200 reconciling, got %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&taggings); err != nil {
		t.Fatalf("Failed to decode taggings: %v", err)
	}
	if len(taggings) != 0 {
		t.Errorf("Expected no taggings after reconcile, got %d", len(taggings))
	}
}

func TestAssignCardsRoute(t *testing.T) {
	app, db := setupApp(t)
	cookie := signup(t, app, "ada@example.com")

	resp := doJSON(t, app, "POST", "/api/icons/", map[string]string{
		"name":     "star",
		"imageUrl": "https://example.com/star.svg",
	}, cookie)
	var icon models.Icon
	if err := json.NewDecoder(resp.Body).Decode(&icon); err != nil {
		t.Fatalf("Failed to decode icon: %v", err)
	}

	resp = doJSON(t, app, "POST", "/api/lanyards/", map[string]string{"name": "work"}, cookie)
	if resp.StatusCode != 201 {
		t.Fatalf("Expected 201 creating lanyard, got %d", resp.StatusCode)
	}
	var lanyard models.Lanyard
	if err := json.NewDecoder(resp.Body).Decode(&lanyard); err != nil {
		t.Fatalf("Failed to decode lanyard: %v", err)
	}

	card := models.Card{Text: "hello", IconID: icon.ID, AuthorID: 1}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/lanyards/instance/%d/cards", lanyard.ID), map[string][]uint64{
		"cardIds": {card.ID},
	}, cookie)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200 assigning cards, got %d", resp.StatusCode)
	}

	var updated models.Lanyard
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("Failed to decode lanyard: %v", err)
	}
	if len(updated.Cards) != 1 {
		t.Errorf("Expected 1 member card, got %d", len(updated.Cards))
	}
}

func TestSystemListingsServeAnonymous(t *testing.T) {
	app, db := setupApp(t)

	stock := models.Icon{
		Name:     "stock",
		ImageURL: "https://example.com/stock.svg",
		AuthorID: identity.SystemStorageID,
	}
	if err := db.Create(&stock).Error; err != nil {
		t.Fatalf("Failed to create system icon: %v", err)
	}

	resp := doJSON(t, app, "GET", "/api/system-assets/icons", nil, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var icons []models.Icon
	if err := json.NewDecoder(resp.Body).Decode(&icons); err != nil {
		t.Fatalf("Failed to decode icons: %v", err)
	}
	if len(icons) != 1 {
		t.Errorf("Expected 1 system icon, got %d", len(icons))
	}

	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/system-assets/icons/instance/%d", stock.ID), nil, nil)
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200 for system instance read, got %d", resp.StatusCode)
	}
}

func TestRequireUserRejectsMissingSession(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "PATCH", "/api/users", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	}, nil)
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, "PATCH", "/api/users", nil, &http.Cookie{
		Name:  middleware.SessionCookie,
		Value: "garbage-token",
	})
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401 for invalid token, got %d", resp.StatusCode)
	}
}
