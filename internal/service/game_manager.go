package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/game"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns the live sessions. A session stays reachable while its
// game runs or any socket watches it; finished games are pruned once the
// last socket unregisters.
type GameManager struct {
	mu       sync.RWMutex
	games    map[string]*game.Session
	log      *zap.Logger
	recorder *settlement.Recorder
}

func NewGameManager(log *zap.Logger, recorder *settlement.Recorder) *GameManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameManager{
		games:    make(map[string]*game.Session),
		log:      log,
		recorder: recorder,
	}
}

func (gm *GameManager) CreateGame(gameID string, variant game.Variant, playerID string, side board.Side) (*game.Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("game %s already exists", gameID)
	}
	s, err := game.NewSession(game.Config{
		GameID:     gameID,
		Variant:    variant,
		PlayerID:   playerID,
		PlayerSide: side,
		Logger:     gm.log,
		Recorder:   gm.recorder,
	})
	if err != nil {
		return nil, err
	}
	gm.games[gameID] = s
	gm.log.Info("game created",
		zap.String("gameId", gameID),
		zap.String("variant", string(variant)),
		zap.String("side", string(side)))
	return s, nil
}

func (gm *GameManager) GetGame(gameID string) (*game.Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	s, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return s, nil
}

// Remove drops a session from the registry if it is prunable.
func (gm *GameManager) Remove(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	s, exists := gm.games[gameID]
	if !exists || !s.Prunable() {
		return
	}
	delete(gm.games, gameID)
	gm.log.Info("game pruned", zap.String("gameId", gameID))
}

func (gm *GameManager) Recorder() *settlement.Recorder {
	return gm.recorder
}
