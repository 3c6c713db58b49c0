package authController

import (
	"log"

	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a bearer token for the given identity payload.
// The client authenticates the user out of band (social sign-in) and
// exchanges the resulting identity for an API token here.
func IssueToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIdentity").(*struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued successfully!", fiber.Map{
		"token": token,
	})
}

// Register creates a user on first sign-in. A repeated email is
// short-circuited with an already-exists result; the unique index on
// email backstops the check against concurrent registrations.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoURL"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		PhotoURL: reqData.PhotoURL,
		Role:     models.RoleNone,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		// Lost the race against another registration for the same
		// email: the unique index rejects the insert.
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User registered successfully!", newUser)
}
