package classValidator

import (
	"regexp"
	"strconv"
	"strings"

	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// CreateClass validator middleware
func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name           string  `json:"name"`
			Image          string  `json:"image"`
			Price          float64 `json:"price"`
			AvailableSeats int     `json:"availableSeats"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Class name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Class name must be at least 3 characters long!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Validate Seats
		if reqData.AvailableSeats < 1 {
			errors["availableSeats"] = "Available seats must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

// SetStatus validates the id path parameter and the status query.
func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
		}

		status := c.Query("status")

		errors := make(map[string]string)

		switch status {
		case models.ClassActive, models.ClassDenied, models.ClassPending:
		default:
			errors["status"] = "Status must be one of pending, active or denied!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", id)
		c.Locals("status", status)
		return c.Next()
	}
}

// SetFeedback validates the id path parameter and the feedback body.
func SetFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class id!", nil)
		}

		reqData := new(struct {
			Feedback string `json:"feedback"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Feedback) == "" {
			errors["feedback"] = "Feedback is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("classID", id)
		c.Locals("feedback", reqData.Feedback)
		return c.Next()
	}
}

// MyClasses validates the email query parameter.
func MyClasses() fiber.Handler {
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
