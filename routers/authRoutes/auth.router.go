package authRoutes

import (
	authControllers "reelcamp/controllers/auth"
	authValidators "reelcamp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidators.IssueToken(), authControllers.IssueToken)
	app.Post("/users", authValidators.Register(), authControllers.Register)
}
