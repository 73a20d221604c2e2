package chess

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// Status reports the terminal state: checkmate hands the win to the side
// that delivered it, no-moves-without-check is stalemate.
func Status(s GameState) board.Status {
	if len(LegalMoves(s)) > 0 {
		return board.Ongoing()
	}
	if InCheck(s, s.Turn) {
		return board.WonBy(s.Turn.Opponent())
	}
	return board.Drawn()
}
