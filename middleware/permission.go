package middleware

import (
	"reelcamp/database"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that resolves the caller's stored
// role and gates the request on it. Must run after JWTMiddleware.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: caller identity not found",
				"data":    nil,
			})
		}

		var user models.User
		err := database.Database.Db.Where("email = ?", email).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		if user.Role != requiredRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}

// RequireAdmin gates a route to admin callers.
func RequireAdmin(c *fiber.Ctx) error {
	return RequireRole(models.RoleAdmin)(c)
}

// RequireInstructor gates a route to instructor callers.
func RequireInstructor(c *fiber.Ctx) error {
	return RequireRole(models.RoleInstructor)(c)
}
