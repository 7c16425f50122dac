package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"reversi-term/board"
	"reversi-term/types"
)

// Session is a local game between two players sharing one terminal.
// It owns the grid for the lifetime of the game and is the only thing that
// changes it.
type Session struct {
	grid    *board.Grid
	turn    types.TurnState
	moves   int
	last    types.Pos
	outcome *types.Outcome
	history []types.Outcome
	log     zerolog.Logger

	moveCallback func(outcome types.Outcome, boardState *types.BoardState)
	endCallback  func(outcome types.Outcome)
}

var _ GameEngine = (*Session)(nil)

// NewSession creates a game from the given configuration. A position in which
// neither player can move is scored immediately.
func NewSession(cfg GameConfig, logger zerolog.Logger) (*Session, error) {
	grid := board.NewGrid()
	if len(cfg.Position) > 0 {
		var err error
		grid, err = board.Parse(cfg.Position...)
		if err != nil {
			return nil, fmt.Errorf("failed to load position: %w", err)
		}
	}
	first := cfg.ToMove
	if first == types.None {
		first = types.Black
	}

	s := &Session{
		grid: grid,
		turn: types.ToMove(first),
		log:  logger,
	}
	if out, ended := s.checkStalemate(); ended {
		s.record(out)
	}
	s.log.Info().Stringer("turn", s.turn).Msg("game started")
	return s, nil
}

// Turn returns the current turn state.
func (s *Session) Turn() types.TurnState {
	return s.turn
}

// Outcome returns the outcome of the last completed turn, or nil before the first.
func (s *Session) Outcome() *types.Outcome {
	if s.outcome == nil {
		return nil
	}
	out := *s.outcome
	return &out
}

// History returns the outcomes of every completed turn, oldest first.
func (s *Session) History() []types.Outcome {
	return append([]types.Outcome(nil), s.history...)
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *board.Grid {
	return s.grid.Clone()
}

// GetBoardState returns a snapshot of the current position.
func (s *Session) GetBoardState() *types.BoardState {
	state := &types.BoardState{
		MoveNumber: s.moves,
		Turn:       s.turn,
		Cells:      s.grid.Cells(),
		Black:      s.grid.Count(types.Black),
		White:      s.grid.Count(types.White),
		LastMove:   s.last,
		Outcome:    s.Outcome(),
	}
	if !s.turn.Over() {
		state.LegalMoves = board.LegalMoves(s.grid, s.turn.Mover())
	}
	return state
}

// PlayMove places a disc for the player to move and advances the turn.
func (s *Session) PlayMove(row, col int) (types.Outcome, error) {
	if s.turn.Over() {
		return types.Outcome{}, ErrGameOver
	}
	mover := s.turn.Mover()
	p := types.Pos{Row: row, Col: col}
	if !p.Valid() {
		return types.Outcome{}, fmt.Errorf("%w: (%d, %d) is off the board", ErrIllegalMove, row, col)
	}

	flips, ok := board.Place(s.grid, mover, row, col)
	if !ok {
		s.log.Debug().Stringer("color", mover).Stringer("pos", p).Msg("placement rejected")
		return types.Outcome{}, fmt.Errorf("%w: %s captures nothing", ErrIllegalMove, p)
	}
	board.MarkCandidates(s.grid)
	s.moves++
	s.last = p

	out := types.Outcome{Kind: types.Placed, Mover: mover, Pos: p, Flipped: len(flips)}
	opp := mover.Opponent()
	switch {
	case s.grid.Count(opp) == 0:
		out.Kind = types.Dominated
		out.Winner = mover
		s.turn = types.GameOver
	case !board.HasLegalMove(s.grid, opp) && !board.HasLegalMove(s.grid, mover):
		out.Kind = types.Ended
		out.Winner, _, _ = board.Score(s.grid)
		s.turn = types.GameOver
	case board.HasLegalMove(s.grid, opp):
		s.turn = types.ToMove(opp)
	default:
		out.Kind = types.Skipped
		s.turn = types.ToMove(mover)
	}

	return s.record(out), nil
}

// Pass hands the turn to the opponent. It is only allowed when the player to
// move has no legal placement.
func (s *Session) Pass() (types.Outcome, error) {
	if s.turn.Over() {
		return types.Outcome{}, ErrGameOver
	}
	mover := s.turn.Mover()
	if board.HasLegalMove(s.grid, mover) {
		s.log.Debug().Stringer("color", mover).Msg("pass rejected")
		return types.Outcome{}, fmt.Errorf("%w: %s has a legal move", ErrCannotPass, mover)
	}

	s.turn = types.ToMove(mover.Opponent())
	out := types.Outcome{Kind: types.Passed, Mover: mover}
	if ended, over := s.checkStalemate(); over {
		ended.Mover = mover
		out = ended
	}
	return s.record(out), nil
}

// Resign ends the game immediately; the opponent wins.
func (s *Session) Resign() (types.Outcome, error) {
	if s.turn.Over() {
		return types.Outcome{}, ErrGameOver
	}
	mover := s.turn.Mover()
	s.turn = types.GameOver
	return s.record(types.Outcome{Kind: types.Resigned, Mover: mover, Winner: mover.Opponent()}), nil
}

// OnMove registers a callback for every completed turn.
func (s *Session) OnMove(fn func(outcome types.Outcome, boardState *types.BoardState)) {
	s.moveCallback = fn
}

// OnGameEnd registers a callback for when the game ends.
func (s *Session) OnGameEnd(fn func(outcome types.Outcome)) {
	s.endCallback = fn
}

// checkStalemate ends the game when neither player can place a disc.
func (s *Session) checkStalemate() (types.Outcome, bool) {
	if s.turn.Over() {
		return types.Outcome{}, false
	}
	if board.HasLegalMove(s.grid, types.Black) || board.HasLegalMove(s.grid, types.White) {
		return types.Outcome{}, false
	}
	winner, _, _ := board.Score(s.grid)
	s.turn = types.GameOver
	return types.Outcome{Kind: types.Ended, Winner: winner}, true
}

// record fills in the disc counts, stores the outcome and notifies listeners.
func (s *Session) record(out types.Outcome) types.Outcome {
	_, out.Black, out.White = board.Score(s.grid)
	s.outcome = &out
	s.history = append(s.history, out)

	ev := s.log.Debug()
	if out.Terminal() {
		ev = s.log.Info()
	}
	ev.Stringer("kind", out.Kind).
		Stringer("mover", out.Mover).
		Int("black", out.Black).
		Int("white", out.White).
		Stringer("turn", s.turn).
		Msg(out.Message())

	if s.moveCallback != nil {
		s.moveCallback(out, s.GetBoardState())
	}
	if out.Terminal() && s.endCallback != nil {
		s.endCallback(out)
	}
	return out
}
