package draughts

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

func TestBestMoveIsDeterministic(t *testing.T) {
	s := NewGame()
	first, ok1 := BestMove(s, 2)
	second, ok2 := BestMove(s, 2)
	if !ok1 || !ok2 {
		t.Fatalf("expected moves from the opening position")
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same position, different move:\n%s", diff)
	}
}

func TestSearchAvoidsOfferingAMan(t *testing.T) {
	s := GameState{Turn: board.White}
	s.place(at(5, 2), Piece{Side: board.White})
	s.place(at(7, 6), Piece{Side: board.White})
	s.place(at(3, 2), Piece{Side: board.Black})

	// stepping the left man forward walks into a forced jump
	m, ok := BestMove(s, 2)
	if !ok {
		t.Fatalf("expected a move")
	}
	if m.From != at(7, 6) {
		t.Fatalf("search moved the man into the jump: %+v", m)
	}
}

func TestSearchTakesTheKingOverTheMan(t *testing.T) {
	s := GameState{Turn: board.White}
	s.place(at(5, 4), Piece{Side: board.White})
	s.place(at(4, 3), Piece{Side: board.Black})
	s.place(at(4, 5), Piece{Side: board.Black, King: true})

	m, ok := BestMove(s, 2)
	if !ok {
		t.Fatalf("expected a move")
	}
	if len(m.Captures) != 1 || m.Captures[0] != at(4, 5) {
		t.Fatalf("expected the king capture, got %+v", m)
	}
}

func TestBestMoveReportsNoMoveWhenStuck(t *testing.T) {
	s := GameState{Turn: board.Black}
	s.place(at(8, 1), Piece{Side: board.Black})
	s.place(at(9, 0), Piece{Side: board.White})
	s.place(at(9, 2), Piece{Side: board.White})

	if _, ok := BestMove(s, SearchDepth); ok {
		t.Fatalf("expected no move from a stuck position")
	}
}
