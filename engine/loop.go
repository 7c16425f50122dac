package engine

import (
	"errors"
	"fmt"

	"reversi-term/types"
)

// InputSource produces syntactically valid move requests. Next blocks until one
// is available; malformed input is handled by the source itself.
type InputSource interface {
	Next() (types.Request, error)
}

// Renderer displays a game. It must not change game state.
type Renderer interface {
	Render(state *types.BoardState)
	Notify(msg string)
}

// Run drives eng with requests from src until the game is over, rendering
// after every completed turn. Rejected requests are reported through r and a
// new request is read. Errors from src are returned.
func Run(eng GameEngine, src InputSource, r Renderer) error {
	r.Render(eng.GetBoardState())
	for !eng.Turn().Over() {
		req, err := src.Next()
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		switch req.Kind {
		case types.Play:
			_, err = eng.PlayMove(req.Pos.Row, req.Pos.Col)
		case types.Pass:
			_, err = eng.Pass()
		case types.Resign:
			_, err = eng.Resign()
		case types.Undo:
			continue
		default:
			continue
		}

		switch {
		case errors.Is(err, ErrIllegalMove):
			r.Notify("Invalid move, try again")
			continue
		case errors.Is(err, ErrCannotPass):
			r.Notify("Cannot pass, a legal move is available")
			continue
		case err != nil:
			return err
		}
		r.Render(eng.GetBoardState())
	}
	return nil
}
