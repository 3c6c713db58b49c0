package userController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelcamp/config"
	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"
	userRoutes "reelcamp/routers/userRoutes"

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
	userRoutes.SetupUserRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string) models.User {
	t.Helper()
	user := models.User{Name: "Test " + role, Email: email, Role: role}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(email, "Test")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestSetUserRoleByAdmin(t *testing.T) {
	app := setupTest(t)

	createUser(t, "admin@example.com", models.RoleAdmin)
	target := createUser(t, "teach@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/users/admin/%d?role=instructor", target.ID), nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var updated models.User
	database.Database.Db.First(&updated, target.ID)
	if updated.Role != models.RoleInstructor {
		t.Fatalf("expected role instructor, got %q", updated.Role)
	}
}

func TestSetUserRoleForbiddenForNonAdmin(t *testing.T) {
	app := setupTest(t)

	createUser(t, "user@example.com", models.RoleNone)
	target := createUser(t, "teach@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/users/admin/%d?role=admin", target.ID), nil)
	req.Header.Set("Authorization", bearerFor(t, "user@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	// No mutation happened
	var unchanged models.User
	database.Database.Db.First(&unchanged, target.ID)
	if unchanged.Role != models.RoleNone {
		t.Fatalf("role changed despite forbidden request: %q", unchanged.Role)
	}
}

func TestSetUserRoleRejectsUnknownRole(t *testing.T) {
	app := setupTest(t)

	createUser(t, "admin@example.com", models.RoleAdmin)
	target := createUser(t, "teach@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/users/admin/%d?role=superuser", target.ID), nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	app := setupTest(t)

	createUser(t, "user@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", bearerFor(t, "user@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	app := setupTest(t)

	createUser(t, "user@example.com", models.RoleNone)
	target := createUser(t, "victim@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", target.ID), nil)
	req.Header.Set("Authorization", bearerFor(t, "user@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.User{}).Where("id = ?", target.ID).Count(&count)
	if count != 1 {
		t.Fatalf("user deleted despite forbidden request")
	}
}

func TestDeleteUserByAdmin(t *testing.T) {
	app := setupTest(t)

	createUser(t, "admin@example.com", models.RoleAdmin)
	target := createUser(t, "victim@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", target.ID), nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.User{}).Where("id = ?", target.ID).Count(&count)
	if count != 0 {
		t.Fatalf("user still present after delete")
	}
}

func TestCheckAdminSelfAndOther(t *testing.T) {
	app := setupTest(t)

	createUser(t, "admin@example.com", models.RoleAdmin)

	// Self-check by the admin
	req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "admin@example.com"))

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Admin bool `json:"admin"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Data.Admin {
		t.Fatalf("expected admin=true for self-check")
	}

	// Asking about someone else's email reports false
	req = httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "someone@example.com"))

	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.Admin {
		t.Fatalf("expected admin=false when asking about another user's email")
	}
}

func TestListInstructorsIsPublicAndProjected(t *testing.T) {
	app := setupTest(t)

	createUser(t, "teach@example.com", models.RoleInstructor)
	createUser(t, "user@example.com", models.RoleNone)

	req := httptest.NewRequest(http.MethodGet, "/instructor", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Instructors []models.User `json:"instructors"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data.Instructors) != 1 {
		t.Fatalf("expected one instructor, got %d", len(payload.Data.Instructors))
	}
	if payload.Data.Instructors[0].Email != "teach@example.com" {
		t.Fatalf("unexpected instructor: %+v", payload.Data.Instructors[0])
	}
}
