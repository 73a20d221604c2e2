package draughts

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// Move carries a complete turn: for a capture chain, Captures lists every
// jumped piece in jump order and Path every landing square, the last of
// which is To. Promotes is set when a man ends the turn as a king, which a
// mid-chain landing on the far rank also triggers.
type Move struct {
	From     board.Position   `json:"from"`
	To       board.Position   `json:"to"`
	Captures []board.Position `json:"captures,omitempty"`
	Path     []board.Position `json:"path,omitempty"`
	Promotes bool             `json:"promotes,omitempty"`
}

// Matches reports whether the move is the legal candidate for a wire request.
func (m Move) Matches(from, to board.Position) bool {
	return m.From == from && m.To == to
}

// diagonals, (dRow, dCol) pairs. Order is fixed: generation order is part of
// the engine contract, the searcher's tie-break depends on it. Men move
// forward only but capture in all four directions.
var diagonals = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// LegalMoves enumerates every legal move for the side to move, in a fixed
// order: row-major scan of the board, diagonal-table order per piece. When
// any capture chain exists, quiet moves are illegal and only the chains
// with the maximum capture count are returned.
func LegalMoves(s GameState) []Move {
	var jumps []Move
	forEachPiece(s, func(from board.Position, pc Piece) {
		jumps = append(jumps, captureChains(s, from, pc)...)
	})
	if len(jumps) > 0 {
		return maximal(jumps)
	}
	var moves []Move
	forEachPiece(s, func(from board.Position, pc Piece) {
		moves = append(moves, quietMoves(s, from, pc)...)
	})
	return moves
}

// LegalMovesFrom narrows LegalMoves to one origin square. The capture
// obligation is board-wide, so a piece with open quiet moves can still have
// nothing legal here while another piece holds the forced jump.
func LegalMovesFrom(s GameState, from board.Position) []Move {
	var legal []Move
	for _, m := range LegalMoves(s) {
		if m.From == from {
			legal = append(legal, m)
		}
	}
	return legal
}

func forEachPiece(s GameState, fn func(board.Position, Piece)) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := board.Position{Row: row, Col: col}
			if pc := s.At(p); !pc.Empty() && pc.Side == s.Turn {
				fn(p, pc)
			}
		}
	}
}

// maximal keeps only the chains with the most captures, preserving order.
func maximal(jumps []Move) []Move {
	most := 0
	for _, m := range jumps {
		if len(m.Captures) > most {
			most = len(m.Captures)
		}
	}
	kept := jumps[:0]
	for _, m := range jumps {
		if len(m.Captures) == most {
			kept = append(kept, m)
		}
	}
	return kept
}

// quietMoves: men step one square diagonally forward onto empty squares,
// kings slide any distance until the first occupied square.
func quietMoves(s GameState, from board.Position, pc Piece) []Move {
	var moves []Move
	if !pc.King {
		dir := forward(pc.Side)
		for _, dc := range []int{-1, 1} {
			to := board.Position{Row: from.Row + dir, Col: from.Col + dc}
			if to.In(Size) && s.At(to).Empty() {
				moves = append(moves, Move{From: from, To: to, Promotes: to.Row == lastRank(pc.Side)})
			}
		}
		return moves
	}
	for _, d := range diagonals {
		to := board.Position{Row: from.Row + d[0], Col: from.Col + d[1]}
		for to.In(Size) && s.At(to).Empty() {
			moves = append(moves, Move{From: from, To: to})
			to = board.Position{Row: to.Row + d[0], Col: to.Col + d[1]}
		}
	}
	return moves
}

// chain is a complete capture sequence under derivation.
type chain struct {
	to       board.Position
	captures []board.Position
	path     []board.Position
	king     bool
}

func captureChains(s GameState, from board.Position, pc Piece) []Move {
	var moves []Move
	for _, c := range extendChain(s, from, pc, nil, nil) {
		moves = append(moves, Move{
			From:     from,
			To:       c.to,
			Captures: c.captures,
			Path:     c.path,
			Promotes: c.king && !pc.King,
		})
	}
	return moves
}

// extendChain explores every jump open to the piece standing at cur and
// returns complete chains only. Jumped pieces stay on the board until the
// whole chain resolves: they block rays and, being in captured already,
// cannot be jumped twice. The moving piece itself does travel, so a chain
// may loop back across its own vacated squares. A man landing on the far
// rank promotes immediately and continues as a king.
func extendChain(s GameState, cur board.Position, pc Piece, captured, path []board.Position) []chain {
	var out []chain

	branch := func(victim, land board.Position) {
		next := s
		next.clear(cur)
		landed := pc
		if !landed.King && land.Row == lastRank(pc.Side) {
			landed.King = true
		}
		next.place(land, landed)
		out = append(out, extendChain(next, land, landed, appended(captured, victim), appended(path, land))...)
	}

	for _, d := range diagonals {
		if pc.King {
			flyingJumps(s, cur, pc, d, captured, branch)
			continue
		}
		over := board.Position{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		land := board.Position{Row: cur.Row + 2*d[0], Col: cur.Col + 2*d[1]}
		if !land.In(Size) || !s.At(land).Empty() {
			continue
		}
		if victim := s.At(over); !victim.Empty() && victim.Side != pc.Side && !holds(captured, over) {
			branch(over, land)
		}
	}

	if len(out) == 0 && len(captured) > 0 {
		out = append(out, chain{to: cur, captures: captured, path: path, king: pc.King})
	}
	return out
}

// flyingJumps walks one diagonal for a king: any run of empty squares, then
// a single jumpable enemy, then every empty square beyond it is a landing.
func flyingJumps(s GameState, cur board.Position, pc Piece, d [2]int, captured []board.Position, branch func(victim, land board.Position)) {
	step := board.Position{Row: cur.Row + d[0], Col: cur.Col + d[1]}
	for step.In(Size) && s.At(step).Empty() {
		step = board.Position{Row: step.Row + d[0], Col: step.Col + d[1]}
	}
	if !step.In(Size) {
		return
	}
	if victim := s.At(step); victim.Side == pc.Side || holds(captured, step) {
		return
	}
	land := board.Position{Row: step.Row + d[0], Col: step.Col + d[1]}
	for land.In(Size) && s.At(land).Empty() {
		branch(step, land)
		land = board.Position{Row: land.Row + d[0], Col: land.Col + d[1]}
	}
}

// appended copies before growing; chain branches must not share backing
// arrays.
func appended(list []board.Position, p board.Position) []board.Position {
	next := make([]board.Position, len(list)+1)
	copy(next, list)
	next[len(list)] = p
	return next
}

func holds(list []board.Position, p board.Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
