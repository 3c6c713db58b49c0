package userController

import (
	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserInfo fetches one user by email.
func GetUserInfo(c *fiber.Ctx) error {
	email, ok := c.Locals("queryEmail").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// ListUsers returns every registered user. Admin only.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
	})
}

// DeleteUser removes a user by id. Admin only.
func DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	result := database.Database.Db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", fiber.Map{
		"deleted": result.RowsAffected,
	})
}

// CheckAdmin is a self-check probe: is the caller an admin. Asking
// about someone else's email always reports false rather than erroring,
// the frontend polls this on every page load.
func CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	caller, _ := c.Locals("email").(string)

	if email != caller {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin check completed!", fiber.Map{
			"admin": false,
		})
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin check completed!", fiber.Map{
			"admin": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin check completed!", fiber.Map{
		"admin": user.Role == models.RoleAdmin,
	})
}

// CheckInstructor is the instructor counterpart of CheckAdmin.
func CheckInstructor(c *fiber.Ctx) error {
	email := c.Params("email")
	caller, _ := c.Locals("email").(string)

	if email != caller {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor check completed!", fiber.Map{
			"instructor": false,
		})
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor check completed!", fiber.Map{
			"instructor": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor check completed!", fiber.Map{
		"instructor": user.Role == models.RoleInstructor,
	})
}

// SetUserRole updates a user's stored role. Admin only.
func SetUserRole(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	role := c.Locals("role").(string)

	result := database.Database.Db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// ListInstructors returns all instructors, projected to the fields the
// public instructor page renders.
func ListInstructors(c *fiber.Ctx) error {
	var instructors []models.User
	if err := database.Database.Db.
		Select("id, name, email, photo_url").
		Where("role = ?", models.RoleInstructor).
		Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", fiber.Map{
		"instructors": instructors,
	})
}
