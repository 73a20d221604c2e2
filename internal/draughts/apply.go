package draughts

// Apply plays a move and returns the resulting state; the input state is
// untouched. Only moves drawn from LegalMoves may reach this function. A
// move that violates that contract is a programming error, and the one cheap
// invariant we can still see (an empty origin) panics.
func Apply(s GameState, m Move) GameState {
	pc := s.At(m.From)
	if pc.Empty() {
		panic("draughts: apply with no piece at " + m.From.String())
	}
	for _, c := range m.Captures {
		s.clear(c)
	}
	s.clear(m.From)
	if m.Promotes {
		pc.King = true
	}
	s.place(m.To, pc)
	s.Turn = s.Turn.Opponent()
	return s
}
