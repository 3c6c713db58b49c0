package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelcamp/config"
	"reelcamp/database"
	"reelcamp/models"
	authRoutes "reelcamp/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:          "test-secret",
		TokenTTLMinutes: 60,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Class{}, &models.SelectedClass{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func jsonReq(method, target string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterCreatesUser(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/users", fiber.Map{
		"name":     "Ada",
		"email":    "ada@example.com",
		"photoURL": "https://example.com/ada.png",
	}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", "ada@example.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Role != models.RoleNone {
		t.Fatalf("expected role %q for new user, got %q", models.RoleNone, user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupTest(t)

	body := fiber.Map{"name": "Ada", "email": "ada@example.com"}

	resp, err := app.Test(jsonReq(http.MethodPost, "/users", body), -1)
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first registration: expected 200, got %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq(http.MethodPost, "/users", body), -1)
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("repeat registration: expected 409, got %d", resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != "User already exists!" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}

	var count int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", "ada@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one user record, got %d", count)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/users", fiber.Map{
		"name":  "Ada",
		"email": "not-an-email",
	}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestIssueTokenReturnsToken(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", fiber.Map{
		"email": "ada@example.com",
		"name":  "Ada",
	}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.Token == "" {
		t.Fatalf("expected a signed token in the response")
	}
}

func TestIssueTokenRejectsMissingEmail(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", fiber.Map{"name": "Ada"}), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
