package paymentValidator

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

// CreatePaymentIntent validator middleware
func CreatePaymentIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Price float64 `json:"price"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("price", reqData.Price)
		return c.Next()
	}
}

// ListPayments validates the email query parameter.
func ListPayments() fiber.Handler {
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

// Enroll validates the cart item id path parameter, the classId query
// and the payment payload body.
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cartID, err := strconv.Atoi(c.Params("id"))
		if err != nil || cartID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart item id!", nil)
		}

		classID, err := strconv.Atoi(c.Query("classId"))
		if err != nil || classID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
		}

		reqData := new(struct {
			TransactionID string   `json:"transactionId"`
			Amount        *float64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount != nil && *reqData.Amount < 0 {
			errors["amount"] = "Amount cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("cartItemID", cartID)
		c.Locals("classID", classID)
		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
