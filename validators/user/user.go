package userValidator

import (
	"regexp"
	"strconv"

	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// UserInfo validates the email query parameter for the user lookup.
func UserInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Query("email")

		errors := make(map[string]string)

		if email == "" || !isValidEmail(email) {
			errors["email"] = "Invalid email!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("queryEmail", email)
		return c.Next()
	}
}

// UserID validates the numeric id path parameter.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}

		c.Locals("userID", id)
		return c.Next()
	}
}

// SetUserRole validates the id path parameter and the role query.
func SetUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}

		role := c.Query("role")

		errors := make(map[string]string)

		switch role {
		case models.RoleAdmin, models.RoleInstructor, models.RoleNone:
		default:
			errors["role"] = "Role must be one of admin, instructor or none!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("userID", id)
		c.Locals("role", role)
		return c.Next()
	}
}
