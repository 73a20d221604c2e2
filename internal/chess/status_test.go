package chess

import (
	"testing"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

func TestStatusOngoingAtTheStart(t *testing.T) {
	if st := Status(NewGame()); st.Over() {
		t.Fatalf("fresh game reported over: %+v", st)
	}
}

func TestFoolsMate(t *testing.T) {
	script := [][2]board.Position{
		{at(6, 5), at(5, 5)}, // f3
		{at(1, 4), at(3, 4)}, // e5
		{at(6, 6), at(4, 6)}, // g4
		{at(0, 3), at(4, 7)}, // Qh4#
	}
	s := NewGame()
	for _, mv := range script {
		s = Apply(s, findMove(t, LegalMoves(s), mv[0], mv[1]))
	}

	if !InCheck(s, board.White) {
		t.Fatalf("white should be in check")
	}
	if got := len(LegalMoves(s)); got != 0 {
		t.Fatalf("checkmated side still has %d moves", got)
	}
	st := Status(s)
	if st.Result != board.ResultWin || st.Winner != board.Black {
		t.Fatalf("expected a black win, got %+v", st)
	}
}

func TestStalemateIsADraw(t *testing.T) {
	s := GameState{Turn: board.Black}
	s.place(at(0, 7), Piece{Kind: King, Side: board.Black, Moved: true})
	s.place(at(1, 5), Piece{Kind: King, Side: board.White, Moved: true})
	s.place(at(2, 6), Piece{Kind: Queen, Side: board.White})

	if InCheck(s, board.Black) {
		t.Fatalf("position should not be check")
	}
	if got := len(LegalMoves(s)); got != 0 {
		t.Fatalf("stalemated side still has %d moves", got)
	}
	st := Status(s)
	if st.Result != board.ResultDraw || st.Winner != "" {
		t.Fatalf("expected a draw, got %+v", st)
	}
}
