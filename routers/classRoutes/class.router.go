package classRoutes

import (
	classControllers "reelcamp/controllers/class"
	"reelcamp/middleware"
	classValidators "reelcamp/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App) {
	app.Get("/classes", classControllers.ListActiveClasses)
	app.Post("/classes", middleware.JWTMiddleware, middleware.RequireInstructor, classValidators.CreateClass(), classControllers.CreateClass)
	app.Get("/classes/check", middleware.JWTMiddleware, middleware.RequireAdmin, classControllers.ListAllClasses)

	app.Patch("/classes/admin/status/:id", middleware.JWTMiddleware, middleware.RequireAdmin, classValidators.SetStatus(), classControllers.SetClassStatus)
	app.Patch("/classes/admin/feedback/:id", middleware.JWTMiddleware, middleware.RequireAdmin, classValidators.SetFeedback(), classControllers.SetClassFeedback)

	app.Get("/instructor/myClass", middleware.JWTMiddleware, middleware.RequireInstructor, classValidators.MyClasses(), classControllers.MyClasses)
}
