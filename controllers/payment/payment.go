package paymentController

import (
	"math"
	"time"

	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"
	"reelcamp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePaymentIntent asks the payment provider for a client secret
// covering the given price.
func CreatePaymentIntent(c *fiber.Ctx) error {
	price := c.Locals("price").(float64)

	// Provider amounts are integer cents
	amount := int64(math.Round(price * 100))

	clientSecret, err := utils.CreateStripePaymentIntent(amount)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created successfully!", fiber.Map{
		"clientSecret": clientSecret,
	})
}

// ListPayments returns the caller's payments, newest first.
func ListPayments(c *fiber.Ctx) error {
	email := c.Locals("queryEmail").(string)
	caller, _ := c.Locals("email").(string)

	if email != caller {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: email does not match caller!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Where("email = ?", email).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", fiber.Map{
		"payments": payments,
	})
}

// Enroll finalizes the purchase of one cart item: consume a seat,
// record the payment and clear the cart item, all in one transaction.
// The seat decrement is a conditional atomic update so concurrent
// enrollments cannot drive availableSeats below zero, and a resubmitted
// payment fails at the cart-item lookup because the first run consumed
// the item.
func Enroll(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cartItemID := c.Locals("cartItemID").(int)
	classID := c.Locals("classID").(int)

	reqData, ok := c.Locals("validatedPayment").(*struct {
		TransactionID string   `json:"transactionId"`
		Amount        *float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tx := database.Database.Db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start enrollment!", nil)
	}

	var cartItem models.SelectedClass
	if err := tx.Where("id = ? AND email = ?", cartItemID, email).First(&cartItem).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	// Consume one seat, but only while seats remain
	seatUpdate := tx.Model(&models.Class{}).
		Where("id = ? AND instructor_status = ? AND available_seats > 0", classID, models.ClassActive).
		UpdateColumns(map[string]interface{}{
			"available_seats": gorm.Expr("available_seats - 1"),
			"enrolled":        gorm.Expr("enrolled + 1"),
		})
	if seatUpdate.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class seats!", nil)
	}
	if seatUpdate.RowsAffected == 0 {
		tx.Rollback()
		var class models.Class
		if err := database.Database.Db.First(&class, classID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class is sold out or not active!", nil)
	}

	amount := cartItem.Price
	if reqData.Amount != nil {
		amount = *reqData.Amount
	}

	payment := models.Payment{
		Email:         email,
		ClassID:       uint(classID),
		CartID:        cartItem.ID,
		ClassName:     cartItem.ClassName,
		TransactionID: reqData.TransactionID,
		Amount:        amount,
		PaidAt:        time.Now(),
	}

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	cartDelete := tx.Delete(&models.SelectedClass{}, cartItem.ID)
	if cartDelete.Error != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart item!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed successfully!", fiber.Map{
		"seatsUpdated":    seatUpdate.RowsAffected,
		"payment":         payment,
		"removedFromCart": cartDelete.RowsAffected,
	})
}
