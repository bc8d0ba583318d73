package routes

import (
	"github.com/DedS3t/marble-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App, ctrl *controllers.GameController, auth fiber.Handler) {
	route := a.Group("/game", auth)
	route.Post("/start", ctrl.StartGame)
	route.Get("/:id", ctrl.GetGame)
	route.Delete("/:id", ctrl.DeleteGame)
}
