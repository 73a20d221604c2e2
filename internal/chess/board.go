// Package chess implements the 8×8 chess engine: board model, legal-move
// generation, move application, terminal status, and the alpha-beta searcher
// behind the AI opponent. Everything operates on GameState values; no
// function mutates its input.
package chess

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

const Size = 8

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece occupies a square. The zero value is an empty square.
type Piece struct {
	Kind  PieceKind  `json:"kind"`
	Side  board.Side `json:"side"`
	Moved bool       `json:"moved"`
}

func (p Piece) Empty() bool {
	return p.Kind == ""
}

// GameState is the full context move generation depends on. It is replaced
// wholesale on every applied move, never mutated in place, so search can
// explore speculative lines without touching the live game.
type GameState struct {
	Board     [Size][Size]Piece
	Turn      board.Side
	EnPassant *board.Position
	WhiteKing board.Position
	BlackKing board.Position
}

func (s GameState) At(p board.Position) Piece {
	return s.Board[p.Row][p.Col]
}

func (s *GameState) place(p board.Position, pc Piece) {
	s.Board[p.Row][p.Col] = pc
	if pc.Kind == King {
		if pc.Side == board.White {
			s.WhiteKing = p
		} else {
			s.BlackKing = p
		}
	}
}

func (s *GameState) clear(p board.Position) {
	s.Board[p.Row][p.Col] = Piece{}
}

func (s GameState) kingPosition(side board.Side) board.Position {
	if side == board.White {
		return s.WhiteKing
	}
	return s.BlackKing
}

// NewGame sets up the standard initial position. Black occupies rows 0-1,
// white rows 6-7, and white moves first.
func NewGame() GameState {
	s := GameState{Turn: board.White}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		s.place(board.Position{Row: 0, Col: col}, Piece{Kind: kind, Side: board.Black})
		s.place(board.Position{Row: 7, Col: col}, Piece{Kind: kind, Side: board.White})
	}
	for col := 0; col < Size; col++ {
		s.place(board.Position{Row: 1, Col: col}, Piece{Kind: Pawn, Side: board.Black})
		s.place(board.Position{Row: 6, Col: col}, Piece{Kind: Pawn, Side: board.White})
	}
	return s
}

// forward is the row delta a side's pawns advance by.
func forward(side board.Side) int {
	if side == board.White {
		return -1
	}
	return 1
}

// lastRank is the promotion rank for a side.
func lastRank(side board.Side) int {
	if side == board.White {
		return 0
	}
	return Size - 1
}
