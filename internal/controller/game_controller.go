package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/game"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/service"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// CreateGame starts a game against the engine. The body names the variant
// and, optionally, the side the player takes.
func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req struct {
		Variant string `json:"variant"`
		Side    string `json:"side"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}

	gameID, err := gc.gameService.CreateGame(req.Variant, req.Side, playerID)
	if err != nil {
		if errors.Is(err, game.ErrUnknownVariant) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	snapshot, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(snapshot)
}

// ResetGame starts the next round of a finished (or abandoned) game.
func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.Reset(gameID, playerID); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, game.ErrNotYourGame):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game reset",
	})
}

// GetLegalTargets lists the squares the piece on (row, col) may move to, for
// the UI's highlighting.
func (gc *GameController) GetLegalTargets(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	from := board.Position{
		Row: c.QueryInt("row", -1),
		Col: c.QueryInt("col", -1),
	}

	targets, err := gc.gameService.LegalTargets(gameID, from)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if targets == nil {
		targets = []board.Position{}
	}
	return c.JSON(fiber.Map{
		"targets": targets,
	})
}

// GetResults lists finished games awaiting settlement. With ?drain=true the
// caller takes them off the ledger.
func (gc *GameController) GetResults(c *fiber.Ctx) error {
	results := gc.gameService.Results(c.QueryBool("drain", false))
	if results == nil {
		results = []settlement.Result{}
	}
	return c.JSON(fiber.Map{
		"results": results,
	})
}
