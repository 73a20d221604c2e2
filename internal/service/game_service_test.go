package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/game"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
)

func newTestService() *GameService {
	return NewGameService(NewGameManager(nil, settlement.NewRecorder()))
}

func TestCreateGameValidation(t *testing.T) {
	gs := newTestService()

	_, err := gs.CreateGame("ludo", "", "p1")
	require.ErrorIs(t, err, game.ErrUnknownVariant)

	_, err = gs.CreateGame("chess", "sideways", "p1")
	require.Error(t, err)

	id, err := gs.CreateGame("chess", "white", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	snap, err := gs.GetGameState(id)
	require.NoError(t, err)
	assert.Equal(t, game.VariantChess, snap.Variant)
	assert.Equal(t, "p1", snap.Players.White.ID)
}

func TestUnknownGameID(t *testing.T) {
	gs := newTestService()

	_, err := gs.GetGameState("nope")
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, gs.Resign("nope", "p1"), ErrGameNotFound)
	require.ErrorIs(t, gs.Reset("nope", "p1"), ErrGameNotFound)
}

func TestResetRequiresTheSeatedPlayer(t *testing.T) {
	gs := newTestService()
	id, err := gs.CreateGame("chess", "", "p1")
	require.NoError(t, err)

	require.ErrorIs(t, gs.Reset(id, "stranger"), game.ErrNotYourGame)
	require.NoError(t, gs.Reset(id, "p1"))
}

func TestMoveRoutedToSession(t *testing.T) {
	gs := newTestService()
	id, err := gs.CreateGame("chess", "", "p1")
	require.NoError(t, err)

	targets, err := gs.LegalTargets(id, board.Position{Row: 6, Col: 4})
	require.NoError(t, err)
	assert.Len(t, targets, 2)

	require.NoError(t, gs.HandleMove(id, "p1", board.Position{Row: 6, Col: 4}, board.Position{Row: 4, Col: 4}, ""))
	snap, err := gs.GetGameState(id)
	require.NoError(t, err)
	require.NotEmpty(t, snap.History)
	assert.Equal(t, "e4", snap.History[0].Notation)
}

func TestFinishedGamePrunedAfterLastSocket(t *testing.T) {
	gs := newTestService()
	id, err := gs.CreateGame("chess", "", "p1")
	require.NoError(t, err)

	// a running game survives its sockets
	gs.UnregisterConnection(id, "p1")
	_, err = gs.GetGameState(id)
	require.NoError(t, err)

	require.NoError(t, gs.Resign(id, "p1"))
	gs.UnregisterConnection(id, "p1")
	_, err = gs.GetGameState(id)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestResultsDrain(t *testing.T) {
	gs := newTestService()
	id, err := gs.CreateGame("chess", "", "p1")
	require.NoError(t, err)
	require.NoError(t, gs.Resign(id, "p1"))

	require.Len(t, gs.Results(false), 1)
	require.Len(t, gs.Results(true), 1)
	assert.Empty(t, gs.Results(false))
}
