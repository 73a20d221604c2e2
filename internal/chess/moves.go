package chess

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// RookMove is the rook half of a castle.
type RookMove struct {
	From board.Position `json:"from"`
	To   board.Position `json:"to"`
}

// Move carries every effect applying it will have: the squares whose pieces
// are removed, the promotion substitution, and the rook relocation on a
// castle. Captures holds zero or one squares; on an en-passant capture it is
// the bypassed pawn's square, not the destination.
type Move struct {
	From      board.Position   `json:"from"`
	To        board.Position   `json:"to"`
	Captures  []board.Position `json:"captures,omitempty"`
	Promotion PieceKind        `json:"promotion,omitempty"`
	Castle    *RookMove        `json:"castle,omitempty"`
	EnPassant bool             `json:"enPassant,omitempty"`
}

// Matches reports whether the move is the legal candidate for a wire request.
// Promotion only discriminates when the move actually promotes.
func (m Move) Matches(from, to board.Position) bool {
	return m.From == from && m.To == to
}

// Direction tables, (dRow, dCol) pairs. Order is fixed: generation order is
// part of the engine contract, the searcher's tie-break depends on it.
var (
	rookDirs   = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs  = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightHops = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// PseudoMoves enumerates moves for the piece at from, ignoring whether they
// leave the mover's own king attacked. Castling is the exception: its
// not-through-check conditions are part of the castle rule itself.
func PseudoMoves(s GameState, from board.Position) []Move {
	pc := s.At(from)
	if pc.Empty() {
		return nil
	}
	switch pc.Kind {
	case Pawn:
		return pawnMoves(s, from, pc)
	case Knight:
		return stepMoves(s, from, pc, knightHops)
	case Bishop:
		return slideMoves(s, from, pc, bishopDirs)
	case Rook:
		return slideMoves(s, from, pc, rookDirs)
	case Queen:
		return slideMoves(s, from, pc, royalDirs)
	case King:
		return kingMoves(s, from, pc)
	}
	return nil
}

// stepMoves: fixed offset list, one step, target empty or enemy-occupied.
func stepMoves(s GameState, from board.Position, pc Piece, offsets [][2]int) []Move {
	var moves []Move
	for _, d := range offsets {
		to := board.Position{Row: from.Row + d[0], Col: from.Col + d[1]}
		if !to.In(Size) {
			continue
		}
		target := s.At(to)
		if target.Empty() {
			moves = append(moves, Move{From: from, To: to})
		} else if target.Side != pc.Side {
			moves = append(moves, Move{From: from, To: to, Captures: []board.Position{to}})
		}
	}
	return moves
}

// slideMoves walks each direction one square at a time, stopping at the
// first occupied square (included as a capture when enemy).
func slideMoves(s GameState, from board.Position, pc Piece, dirs [][2]int) []Move {
	var moves []Move
	for _, d := range dirs {
		to := board.Position{Row: from.Row + d[0], Col: from.Col + d[1]}
		for to.In(Size) {
			target := s.At(to)
			if target.Empty() {
				moves = append(moves, Move{From: from, To: to})
			} else {
				if target.Side != pc.Side {
					moves = append(moves, Move{From: from, To: to, Captures: []board.Position{to}})
				}
				break
			}
			to = board.Position{Row: to.Row + d[0], Col: to.Col + d[1]}
		}
	}
	return moves
}

func pawnMoves(s GameState, from board.Position, pc Piece) []Move {
	var moves []Move
	dir := forward(pc.Side)

	push := func(to board.Position, captures []board.Position, enPassant bool) {
		m := Move{From: from, To: to, Captures: captures, EnPassant: enPassant}
		if to.Row == lastRank(pc.Side) {
			m.Promotion = Queen
		}
		moves = append(moves, m)
	}

	// single step, then double step from the start
	one := board.Position{Row: from.Row + dir, Col: from.Col}
	if one.In(Size) && s.At(one).Empty() {
		push(one, nil, false)
		two := board.Position{Row: from.Row + 2*dir, Col: from.Col}
		if !pc.Moved && two.In(Size) && s.At(two).Empty() {
			push(two, nil, false)
		}
	}
	// diagonal captures, including onto the en-passant target square
	for _, dc := range []int{-1, 1} {
		to := board.Position{Row: from.Row + dir, Col: from.Col + dc}
		if !to.In(Size) {
			continue
		}
		target := s.At(to)
		if !target.Empty() && target.Side != pc.Side {
			push(to, []board.Position{to}, false)
		} else if target.Empty() && s.EnPassant != nil && *s.EnPassant == to {
			// the victim sits beside the pawn, not on the destination
			victim := board.Position{Row: from.Row, Col: to.Col}
			push(to, []board.Position{victim}, true)
		}
	}
	return moves
}

func kingMoves(s GameState, from board.Position, pc Piece) []Move {
	moves := stepMoves(s, from, pc, royalDirs)
	if pc.Moved || Attacked(s, pc.Side.Opponent(), from) {
		return moves
	}
	// castle: unmoved rook, empty between, king never crosses an attacked square
	if m, ok := castleMove(s, from, pc, 0, 2, 3, []int{1, 2, 3}); ok {
		moves = append(moves, m)
	}
	if m, ok := castleMove(s, from, pc, 7, 6, 5, []int{5, 6}); ok {
		moves = append(moves, m)
	}
	return moves
}

func castleMove(s GameState, from board.Position, pc Piece, rookCol, kingTo, rookTo int, between []int) (Move, bool) {
	corner := board.Position{Row: from.Row, Col: rookCol}
	rook := s.At(corner)
	if rook.Empty() || rook.Kind != Rook || rook.Side != pc.Side || rook.Moved {
		return Move{}, false
	}
	for _, col := range between {
		if !s.At(board.Position{Row: from.Row, Col: col}).Empty() {
			return Move{}, false
		}
	}
	transit := board.Position{Row: from.Row, Col: (from.Col + kingTo) / 2}
	dest := board.Position{Row: from.Row, Col: kingTo}
	enemy := pc.Side.Opponent()
	if Attacked(s, enemy, transit) || Attacked(s, enemy, dest) {
		return Move{}, false
	}
	return Move{
		From:   from,
		To:     dest,
		Castle: &RookMove{From: corner, To: board.Position{Row: from.Row, Col: rookTo}},
	}, true
}

// Attacked reports whether by's pieces attack the target square. It walks
// the same direction tables move generation uses.
func Attacked(s GameState, by board.Side, target board.Position) bool {
	for _, d := range rookDirs {
		if pc, ok := firstAlong(s, target, d); ok && pc.Side == by && (pc.Kind == Rook || pc.Kind == Queen) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if pc, ok := firstAlong(s, target, d); ok && pc.Side == by && (pc.Kind == Bishop || pc.Kind == Queen) {
			return true
		}
	}
	for _, d := range knightHops {
		p := board.Position{Row: target.Row + d[0], Col: target.Col + d[1]}
		if p.In(Size) {
			if pc := s.At(p); !pc.Empty() && pc.Side == by && pc.Kind == Knight {
				return true
			}
		}
	}
	for _, d := range royalDirs {
		p := board.Position{Row: target.Row + d[0], Col: target.Col + d[1]}
		if p.In(Size) {
			if pc := s.At(p); !pc.Empty() && pc.Side == by && pc.Kind == King {
				return true
			}
		}
	}
	// pawns attack one row toward their opponent
	row := target.Row - forward(by)
	for _, dc := range []int{-1, 1} {
		p := board.Position{Row: row, Col: target.Col + dc}
		if p.In(Size) {
			if pc := s.At(p); !pc.Empty() && pc.Side == by && pc.Kind == Pawn {
				return true
			}
		}
	}
	return false
}

func firstAlong(s GameState, from board.Position, d [2]int) (Piece, bool) {
	p := board.Position{Row: from.Row + d[0], Col: from.Col + d[1]}
	for p.In(Size) {
		if pc := s.At(p); !pc.Empty() {
			return pc, true
		}
		p = board.Position{Row: p.Row + d[0], Col: p.Col + d[1]}
	}
	return Piece{}, false
}
