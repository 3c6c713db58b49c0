package userRoutes

import (
	userControllers "reelcamp/controllers/user"
	"reelcamp/middleware"
	userValidators "reelcamp/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/user/info", middleware.JWTMiddleware, userValidators.UserInfo(), userControllers.GetUserInfo)

	app.Get("/users", middleware.JWTMiddleware, middleware.RequireAdmin, userControllers.ListUsers)
	app.Delete("/users/:id", middleware.JWTMiddleware, middleware.RequireAdmin, userValidators.UserID(), userControllers.DeleteUser)

	app.Get("/users/admin/:email", middleware.JWTMiddleware, userControllers.CheckAdmin)
	app.Patch("/users/admin/:id", middleware.JWTMiddleware, middleware.RequireAdmin, userValidators.SetUserRole(), userControllers.SetUserRole)

	app.Get("/instructor", userControllers.ListInstructors)
	app.Get("/users/instructor/:email", middleware.JWTMiddleware, userControllers.CheckInstructor)
}
