package routes

import (
	"github.com/DedS3t/marble-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(a *fiber.App, auth fiber.Handler) {
	route := a.Group("/user", auth)

	route.Get("/cur", controllers.Cur)
}
