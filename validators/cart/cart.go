package cartValidator

import (
	"regexp"
	"strconv"

	"reelcamp/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ListCart validates the email query parameter.
func ListCart() fiber.Handler {
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

// AddToCart validator middleware
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassID uint `json:"classId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ClassID < 1 {
			errors["classId"] = "Class id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", int(reqData.ClassID))
		return c.Next()
	}
}

// CartItemID validates the numeric id path parameter.
func CartItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart item id!", nil)
		}

		c.Locals("cartItemID", id)
		return c.Next()
	}
}
