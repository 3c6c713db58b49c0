package cartController

import (
	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

// ListCart returns the caller's cart items, newest first.
func ListCart(c *fiber.Ctx) error {
	email := c.Locals("queryEmail").(string)
	caller, _ := c.Locals("email").(string)

	if email != caller {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: email does not match caller!", nil)
	}

	var items []models.SelectedClass
	if err := database.Database.Db.
		Where("email = ?", email).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart items fetched successfully!", fiber.Map{
		"selectedClasses": items,
	})
}

// AddToCart selects a class into the caller's cart, snapshotting the
// class fields the cart page renders.
func AddToCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID := c.Locals("classID").(int)

	var class models.Class
	if err := database.Database.Db.
		Where("id = ? AND instructor_status = ?", classID, models.ClassActive).
		First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found or not active!", nil)
	}

	// Check if the class is already in the cart
	var existing models.SelectedClass
	if err := database.Database.Db.
		Where("email = ? AND class_id = ?", email, classID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Class already in cart!", nil)
	}

	item := models.SelectedClass{
		Email:           email,
		ClassID:         class.ID,
		ClassName:       class.Name,
		Image:           class.Image,
		Price:           class.Price,
		InstructorName:  class.InstructorName,
		InstructorEmail: class.InstructorEmail,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add class to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class added to cart successfully!", item)
}

// RemoveFromCart deletes one of the caller's own cart items.
func RemoveFromCart(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	cartItemID := c.Locals("cartItemID").(int)

	var item models.SelectedClass
	if err := database.Database.Db.First(&item, cartItemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	if item.Email != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: cart item belongs to another user!", nil)
	}

	result := database.Database.Db.Delete(&models.SelectedClass{}, cartItemID)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed successfully!", fiber.Map{
		"deleted": result.RowsAffected,
	})
}
