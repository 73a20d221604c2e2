// Package game hosts the turn controller: one Session per board, driving a
// human seat and the engine seat through Ready, Playing and Finished, and
// reporting finished runs to settlement.
package game

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/settlement"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/ws"
)

// defaultThinkDelay paces the engine's reply so the UI can show it thinking.
// The search itself usually needs far less.
const defaultThinkDelay = 600 * time.Millisecond

type Phase string

const (
	PhaseReady    Phase = "ready"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Seat describes one side of the board on the wire.
type Seat struct {
	ID      string     `json:"id"`
	Side    board.Side `json:"side"`
	AI      bool       `json:"ai"`
	ThinkMs int64      `json:"thinkMs"`
}

type Seats struct {
	White Seat `json:"white"`
	Black Seat `json:"black"`
}

// Captured lists the pieces each side has taken, in capture order, for the
// UI trays.
type Captured struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// Snapshot is the full wire state, pushed over every socket after each
// change and served on the REST state endpoint.
type Snapshot struct {
	GameID    string          `json:"gameId"`
	Variant   Variant         `json:"variant"`
	Phase     Phase           `json:"phase"`
	Round     int             `json:"round"`
	Board     any             `json:"board"`
	ToMove    board.Side      `json:"toMove"`
	IsCheck   bool            `json:"isCheck"`
	EnPassant *board.Position `json:"enPassantTarget,omitempty"`
	Thinking  bool            `json:"thinking"`
	Status    board.Status    `json:"status"`
	History   []HistoryEntry  `json:"moveHistory"`
	Captured  Captured        `json:"capturedPieces"`
	Players   Seats           `json:"players"`
}

// Config assembles a session. Zero values fall back to defaults: the human
// takes white, the stock thinking delay applies, logging is off.
type Config struct {
	GameID     string
	Variant    Variant
	PlayerID   string
	PlayerSide board.Side
	ThinkDelay time.Duration
	Logger     *zap.Logger
	Recorder   *settlement.Recorder
}

// Session is the turn controller for one human-versus-engine game. Anyone
// holding the game ID may connect and watch; only the seated player may
// move or resign. All board-affecting operations run under one lock, so an
// engine search always starts from the state the previous application
// produced.
type Session struct {
	ID      string
	Variant Variant

	mu         sync.Mutex
	rules      rules
	phase      Phase
	round      int
	generation int
	thinking   bool
	status     board.Status
	history    []HistoryEntry
	captured   map[board.Side][]string
	humanID    string
	humanSide  board.Side
	thinkDelay time.Duration
	meters     map[board.Side]*Meter

	conns    *connections
	log      *zap.Logger
	recorder *settlement.Recorder
}

func NewSession(cfg Config) (*Session, error) {
	r, err := rulesFor(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if cfg.PlayerSide == "" {
		cfg.PlayerSide = board.White
	}
	if cfg.ThinkDelay <= 0 {
		cfg.ThinkDelay = defaultThinkDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	log := cfg.Logger.With(zap.String("gameId", cfg.GameID), zap.String("variant", string(cfg.Variant)))

	s := &Session{
		ID:         cfg.GameID,
		Variant:    cfg.Variant,
		rules:      r,
		phase:      PhaseReady,
		status:     board.Ongoing(),
		captured:   make(map[board.Side][]string),
		humanID:    cfg.PlayerID,
		humanSide:  cfg.PlayerSide,
		thinkDelay: cfg.ThinkDelay,
		meters:     map[board.Side]*Meter{board.White: NewMeter(), board.Black: NewMeter()},
		conns:      newConnections(log),
		log:        log,
		recorder:   cfg.Recorder,
	}
	if s.humanSide == board.Black {
		// the engine owns white and opens without waiting for input
		s.phase = PhasePlaying
		s.scheduleEngine()
	}
	return s, nil
}

// HandleMove plays the seated player's move. The first move of a round
// moves the session from Ready to Playing; a terminal position finishes it,
// anything else hands the turn to the engine.
func (s *Session) HandleMove(playerID string, from, to board.Position, promotion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID != s.humanID {
		return ErrNotYourGame
	}
	if s.phase == PhaseFinished {
		return ErrGameFinished
	}
	if s.thinking || s.rules.Turn() != s.humanSide {
		return ErrNotYourTurn
	}

	entry, err := s.rules.Play(from, to, promotion)
	if err != nil {
		return err
	}
	if s.phase == PhaseReady {
		s.phase = PhasePlaying
	}
	s.meters[s.humanSide].Stop()
	s.record(entry)
	s.log.Info("player move", zap.String("notation", entry.Notation))

	if st := s.rules.Status(); st.Over() {
		s.finish(st)
		s.publish(true)
		return nil
	}
	s.scheduleEngine()
	s.publish(false)
	return nil
}

// Resign ends the round in the engine's favor and cancels any pending
// engine reply.
func (s *Session) Resign(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if playerID != s.humanID {
		return ErrNotYourGame
	}
	if s.phase == PhaseFinished {
		return ErrGameFinished
	}
	s.generation++
	s.thinking = false
	s.log.Info("player resigned")
	s.finish(board.WonBy(s.humanSide.Opponent()))
	s.publish(true)
	return nil
}

// Reset reconstructs a fresh initial position for the next round. A pending
// engine reply for the old round is abandoned.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.round++
	s.rules.Reset()
	s.phase = PhaseReady
	s.status = board.Ongoing()
	s.history = nil
	s.captured = make(map[board.Side][]string)
	s.thinking = false
	for _, m := range s.meters {
		m.Reset()
	}
	s.log.Info("session reset", zap.Int("round", s.round))
	if s.humanSide == board.Black {
		s.phase = PhasePlaying
		s.scheduleEngine()
	}
	s.publish(false)
}

// LegalTargets lists the destinations currently legal from one square, for
// the UI's highlighting.
func (s *Session) LegalTargets(from board.Position) []board.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.LegalTargets(from)
}

// Snapshot returns the current wire state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// IsPlayer reports whether id holds the human seat.
func (s *Session) IsPlayer(id string) bool {
	return id == s.humanID
}

// Register attaches a socket. A client already connected keeps its first
// socket; the newcomer is closed. The current state goes out immediately so
// a fresh page draws without waiting for a move.
func (s *Session) Register(clientID string, conn *websocket.Conn) {
	if !s.conns.add(clientID, conn) {
		s.log.Warn("duplicate connection refused", zap.String("clientId", clientID))
		conn.Close()
		return
	}
	s.log.Info("client connected", zap.String("clientId", clientID))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(s.phase == PhaseFinished)
}

func (s *Session) Unregister(clientID string) {
	s.conns.remove(clientID)
	s.log.Info("client disconnected", zap.String("clientId", clientID))
}

// Prunable reports whether the round is over and the last socket has gone,
// so the registry may drop the session.
func (s *Session) Prunable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseFinished && s.conns.count() == 0
}

// SendError pushes an error frame to one client. Routing it through the
// connection registry keeps the write serialized with broadcasts.
func (s *Session) SendError(clientID string, message string) {
	frame, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Message: message})
	if err != nil {
		return
	}
	s.conns.sendTo(clientID, frame)
}

// scheduleEngine queues the engine reply after the thinking delay. The
// generation stamp lets a reset or resignation abandon it. Caller holds the
// lock.
func (s *Session) scheduleEngine() {
	s.thinking = true
	s.meters[s.humanSide.Opponent()].Start()
	gen := s.generation
	time.AfterFunc(s.thinkDelay, func() {
		s.engineReply(gen)
	})
}

func (s *Session) engineReply(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.phase != PhasePlaying {
		return
	}
	s.thinking = false
	s.meters[s.humanSide.Opponent()].Stop()

	entry, ok := s.rules.PlayBest()
	if !ok {
		s.finish(s.rules.Status())
		s.publish(true)
		return
	}
	s.record(entry)
	s.log.Info("engine move", zap.String("notation", entry.Notation))

	if st := s.rules.Status(); st.Over() {
		s.finish(st)
		s.publish(true)
		return
	}
	s.meters[s.humanSide].Start()
	s.publish(false)
}

// record appends an applied move to the history and its victims to the
// mover's tray. Caller holds the lock.
func (s *Session) record(entry HistoryEntry) {
	s.history = append(s.history, entry)
	if len(entry.Taken) > 0 {
		s.captured[entry.Side] = append(s.captured[entry.Side], entry.Taken...)
	}
}

// finish closes the round and reports it to settlement. Caller holds the
// lock.
func (s *Session) finish(st board.Status) {
	s.phase = PhaseFinished
	s.status = st
	s.meters[board.White].Stop()
	s.meters[board.Black].Stop()
	s.log.Info("game finished",
		zap.String("result", string(st.Result)),
		zap.String("winner", string(st.Winner)),
		zap.Int("moves", len(s.history)),
	)
	if s.recorder == nil {
		return
	}
	res := settlement.Result{
		GameID:     s.ID,
		Round:      s.round,
		Variant:    string(s.Variant),
		Status:     st,
		Moves:      len(s.history),
		WhiteThink: s.meters[board.White].Elapsed(),
		BlackThink: s.meters[board.Black].Elapsed(),
		FinishedAt: time.Now(),
	}
	if err := s.recorder.Record(res); err != nil {
		s.log.Warn("settlement report rejected", zap.Error(err))
	}
}

// publish pushes the state frame, and the result frame when the round just
// ended, to every socket. The write happens off the session lock. Caller
// holds the lock.
func (s *Session) publish(withResult bool) {
	frames := make([]any, 0, 2)
	state, err := ws.NewMessage(ws.MessageTypeGameState, s.snapshot())
	if err != nil {
		s.log.Error("marshal state frame", zap.Error(err))
		return
	}
	frames = append(frames, state)
	if withResult {
		result, err := ws.NewMessage(ws.MessageTypeGameResult, s.status)
		if err != nil {
			s.log.Error("marshal result frame", zap.Error(err))
		} else {
			frames = append(frames, result)
		}
	}
	go s.conns.send(frames...)
}

// snapshot builds the wire state. Caller holds the lock.
func (s *Session) snapshot() Snapshot {
	return Snapshot{
		GameID:    s.ID,
		Variant:   s.Variant,
		Phase:     s.phase,
		Round:     s.round,
		Board:     s.rules.Cells(),
		ToMove:    s.rules.Turn(),
		IsCheck:   s.rules.InCheck(),
		EnPassant: s.rules.EnPassantTarget(),
		Thinking:  s.thinking,
		Status:    s.status,
		History:   append([]HistoryEntry(nil), s.history...),
		Captured: Captured{
			White: append([]string(nil), s.captured[board.White]...),
			Black: append([]string(nil), s.captured[board.Black]...),
		},
		Players: Seats{
			White: s.seat(board.White),
			Black: s.seat(board.Black),
		},
	}
}

func (s *Session) seat(side board.Side) Seat {
	st := Seat{
		Side:    side,
		AI:      side != s.humanSide,
		ThinkMs: s.meters[side].Elapsed().Milliseconds(),
	}
	if side == s.humanSide {
		st.ID = s.humanID
	} else {
		st.ID = "engine"
	}
	return st
}
