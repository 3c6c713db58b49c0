package cartRoutes

import (
	cartControllers "reelcamp/controllers/cart"
	"reelcamp/middleware"
	cartValidators "reelcamp/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	app.Get("/selectClasses", middleware.JWTMiddleware, cartValidators.ListCart(), cartControllers.ListCart)
	app.Post("/selectClasses", middleware.JWTMiddleware, cartValidators.AddToCart(), cartControllers.AddToCart)
	app.Delete("/selectClasses/:id", middleware.JWTMiddleware, cartValidators.CartItemID(), cartControllers.RemoveFromCart)
}
