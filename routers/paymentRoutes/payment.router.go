package paymentRoutes

import (
	paymentControllers "reelcamp/controllers/payment"
	"reelcamp/middleware"
	paymentValidators "reelcamp/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/create-payment-intent", middleware.JWTMiddleware, paymentValidators.CreatePaymentIntent(), paymentControllers.CreatePaymentIntent)
	app.Get("/payments", middleware.JWTMiddleware, paymentValidators.ListPayments(), paymentControllers.ListPayments)
	app.Post("/payments/:id", middleware.JWTMiddleware, paymentValidators.Enroll(), paymentControllers.Enroll)
}
