package classController

import (
	"reelcamp/database"
	"reelcamp/middleware"
	"reelcamp/models"

	"github.com/gofiber/fiber/v2"
)

// ListActiveClasses returns the publicly browsable classes: only those
// an admin has approved.
func ListActiveClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("instructor_status = ?", models.ClassActive).
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": classes,
	})
}

// CreateClass creates a class owned by the calling instructor. New
// classes start pending until an admin reviews them.
func CreateClass(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var instructor models.User
	if err := database.Database.Db.Where("email = ?", email).First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedClass").(*struct {
		Name           string  `json:"name"`
		Image          string  `json:"image"`
		Price          float64 `json:"price"`
		AvailableSeats int     `json:"availableSeats"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	class := models.Class{
		Name:             reqData.Name,
		Image:            reqData.Image,
		Price:            reqData.Price,
		AvailableSeats:   reqData.AvailableSeats,
		InstructorName:   instructor.Name,
		InstructorEmail:  instructor.Email,
		InstructorStatus: models.ClassPending,
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class created successfully!", class)
}

// ListAllClasses returns every class regardless of status. Admin only.
func ListAllClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.Order("created_at desc").Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": classes,
	})
}

// SetClassStatus moves a class through its review lifecycle. Admin only.
func SetClassStatus(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)
	status := c.Locals("status").(string)

	result := database.Database.Db.Model(&models.Class{}).Where("id = ?", classID).Update("instructor_status", status)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update class status!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class status updated successfully!", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// SetClassFeedback records review feedback on a class. Admin only.
func SetClassFeedback(c *fiber.Ctx) error {
	classID := c.Locals("classID").(int)
	feedback := c.Locals("feedback").(string)

	result := database.Database.Db.Model(&models.Class{}).Where("id = ?", classID).Update("admin_feedback", feedback)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback updated successfully!", fiber.Map{
		"updated": result.RowsAffected,
	})
}

// MyClasses lists the classes owned by the calling instructor.
func MyClasses(c *fiber.Ctx) error {
	email := c.Locals("queryEmail").(string)
	caller, _ := c.Locals("email").(string)

	if email != caller {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Forbidden: email does not match caller!", nil)
	}

	var classes []models.Class
	if err := database.Database.Db.
		Where("instructor_email = ?", email).
		Order("created_at desc").
		Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", fiber.Map{
		"classes": classes,
	})
}
