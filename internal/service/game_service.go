package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/game"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
)

// GameService is the facade the HTTP and websocket controllers talk to. It
// resolves game IDs to sessions and keeps transport types out of the game
// package.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// CreateGame starts a session against the engine and returns its ID. An
// empty side seats the player as white.
func (gs *GameService) CreateGame(variant string, side string, playerID string) (string, error) {
	playerSide, err := parseSide(side)
	if err != nil {
		return "", err
	}
	gameID := uuid.New().String()
	if _, err := gs.gameManager.CreateGame(gameID, game.Variant(variant), playerID, playerSide); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (game.Snapshot, error) {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, from, to board.Position, promotion string) error {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return s.HandleMove(playerID, from, to, promotion)
}

func (gs *GameService) Resign(gameID string, playerID string) error {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return s.Resign(playerID)
}

// Reset starts the next round of an existing game. Only the seated player
// may ask for a rematch.
func (gs *GameService) Reset(gameID string, playerID string) error {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	if !s.IsPlayer(playerID) {
		return game.ErrNotYourGame
	}
	s.Reset()
	return nil
}

func (gs *GameService) LegalTargets(gameID string, from board.Position) ([]board.Position, error) {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return s.LegalTargets(from), nil
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	s.Register(clientID, conn)
	return nil
}

// UnregisterConnection detaches a socket. When the last socket of a
// finished game goes, the session is pruned from the registry.
func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	s.Unregister(clientID)
	gs.gameManager.Remove(gameID)
}

// SendError pushes an error frame to one connected client of a game.
func (gs *GameService) SendError(gameID string, clientID string, message string) {
	s, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	s.SendError(clientID, message)
}

func parseSide(side string) (board.Side, error) {
	switch side {
	case "", string(board.White):
		return board.White, nil
	case string(board.Black):
		return board.Black, nil
	}
	return "", fmt.Errorf("unknown side %q", side)
}

// Results lists finished games awaiting settlement. With drain set the
// listed results are cleared from the ledger in the same step.
func (gs *GameService) Results(drain bool) []settlement.Result {
	rec := gs.gameManager.Recorder()
	if rec == nil {
		return nil
	}
	if drain {
		return rec.Drain()
	}
	return rec.Pending()
}
