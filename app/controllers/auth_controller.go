package controllers

import (
	"github.com/DedS3t/marble-backend/app/models"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// Cur returns the player id carried by the caller's token.
func Cur(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.Rejection{Code: models.CodeInvalidAction, Message: "token has no user_id"})
	}
	return c.SendString(userID)
}
