package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

func sample(gameID string, round int) Result {
	return Result{
		GameID:     gameID,
		Round:      round,
		Variant:    "chess",
		Status:     board.WonBy(board.White),
		Moves:      12,
		FinishedAt: time.Now(),
	}
}

func TestRecordRejectsDuplicates(t *testing.T) {
	r := NewRecorder()

	require.NoError(t, r.Record(sample("g1", 0)))
	err := r.Record(sample("g1", 0))
	require.ErrorIs(t, err, ErrDuplicateResult)
	assert.Equal(t, 1, r.Size())
}

func TestRematchSettlesSeparately(t *testing.T) {
	r := NewRecorder()

	require.NoError(t, r.Record(sample("g1", 0)))
	require.NoError(t, r.Record(sample("g1", 1)))
	assert.Equal(t, 2, r.Size())
}

func TestDrainClearsButRemembers(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Record(sample("g1", 0)))
	require.NoError(t, r.Record(sample("g2", 0)))

	batch := r.Drain()
	require.Len(t, batch, 2)
	assert.Equal(t, "g1", batch[0].GameID)
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Pending())

	require.ErrorIs(t, r.Record(sample("g1", 0)), ErrDuplicateResult)
	require.NoError(t, r.Record(sample("g3", 0)))
}

func TestPendingIsASnapshot(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Record(sample("g1", 0)))

	pending := r.Pending()
	pending[0].GameID = "mutated"
	assert.Equal(t, "g1", r.Pending()[0].GameID)
}
