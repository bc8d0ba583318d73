package controllers

import (
	"context"

	"github.com/DedS3t/marble-backend/app/models"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Games is what the HTTP surface needs from the engine.
type Games interface {
	StartGame(ctx context.Context, roomID string, players []models.PlayerDto) (*models.GameState, error)
	State(ctx context.Context, roomID string) (*models.GameState, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type GameController struct {
	games Games
}

func NewGameController(games Games) *GameController {
	return &GameController{games: games}
}

// StartGame turns a lobby into a running game.
func (gc *GameController) StartGame(c *fiber.Ctx) error {
	dto := new(models.GameCreateDto)
	if err := c.BodyParser(dto); err != nil {
		return reject(c, models.InvalidAction("malformed body: %v", err))
	}

	st, err := gc.games.StartGame(c.Context(), dto.RoomID, dto.Players)
	if err != nil {
		return reject(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

func (gc *GameController) GetGame(c *fiber.Ctx) error {
	st, err := gc.games.State(c.Context(), c.Params("id"))
	if err != nil {
		return reject(c, err)
	}
	return c.JSON(st)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.games.DeleteRoom(c.Context(), c.Params("id")); err != nil {
		return reject(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func statusFor(code models.Code) int {
	switch code {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeInvalidAction:
		return fiber.StatusBadRequest
	case models.CodeInvalidTurn, models.CodeInvalidState:
		return fiber.StatusConflict
	case models.CodeInsufficientFunds:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func reject(c *fiber.Ctx, err error) error {
	rej := models.AsRejection(err)
	if rej.Code == models.CodeInternal {
		log.WithField("path", c.Path()).WithError(err).Error("request failed")
	}
	return c.Status(statusFor(rej.Code)).JSON(rej)
}
