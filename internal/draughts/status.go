package draughts

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// Status reports the terminal state. A side that cannot move has lost,
// whether its pieces are gone or merely stuck; draughts knows no stalemate.
func Status(s GameState) board.Status {
	if len(LegalMoves(s)) > 0 {
		return board.Ongoing()
	}
	return board.WonBy(s.Turn.Opponent())
}
