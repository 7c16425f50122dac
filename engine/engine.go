// Package engine defines the interface for game engines and implements the
// local two-player turn controller.
package engine

import "reversi-term/types"

// GameEngine defines the interface for playing a game of Reversi.
type GameEngine interface {
	// GetBoardState returns a snapshot of the current position.
	GetBoardState() *types.BoardState

	// Turn returns the current turn state.
	Turn() types.TurnState

	// PlayMove places a disc for the player to move.
	// Returns ErrIllegalMove if the placement captures nothing.
	PlayMove(row, col int) (types.Outcome, error)

	// Pass passes the current turn. Returns ErrCannotPass while a legal move exists.
	Pass() (types.Outcome, error)

	// Resign ends the game in favour of the opponent.
	Resign() (types.Outcome, error)

	// OnMove registers a callback for every completed turn.
	// The board state is passed directly so the callback does not call back in.
	OnMove(func(outcome types.Outcome, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome types.Outcome))
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Position []string    // Optional starting layout, one string per row (see board.Parse)
	ToMove   types.Color // Player to move first; Black when unset
}

// DefaultConfig returns the standard opening with Black to move.
func DefaultConfig() GameConfig {
	return GameConfig{ToMove: types.Black}
}
