package chess

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// Apply plays a move and returns the resulting state; the input state is
// untouched. Only moves drawn from LegalMoves may reach this function. A
// move that violates that contract is a programming error, and the one cheap
// invariant we can still see (an empty origin) panics.
func Apply(s GameState, m Move) GameState {
	pc := s.At(m.From)
	if pc.Empty() {
		panic("chess: apply with no piece at " + m.From.String())
	}
	wasPawn := pc.Kind == Pawn

	for _, c := range m.Captures {
		s.clear(c)
	}
	s.clear(m.From)
	pc.Moved = true
	if m.Promotion != "" {
		pc.Kind = m.Promotion
	}
	s.place(m.To, pc)

	if m.Castle != nil {
		rook := s.At(m.Castle.From)
		s.clear(m.Castle.From)
		rook.Moved = true
		s.place(m.Castle.To, rook)
	}

	// a double step opens the en-passant window on the vacated square for
	// exactly one reply; any other move closes it
	if wasPawn && (m.To.Row-m.From.Row == 2 || m.From.Row-m.To.Row == 2) {
		mid := board.Position{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
		s.EnPassant = &mid
	} else {
		s.EnPassant = nil
	}

	s.Turn = s.Turn.Opponent()
	return s
}
