package types

import "fmt"

// OutcomeKind tags the result of one turn.
type OutcomeKind uint8

const (
	Placed OutcomeKind = iota + 1
	Passed
	Skipped
	Resigned
	Dominated
	Ended
)

func (k OutcomeKind) String() string {
	switch k {
	case Placed:
		return "placed"
	case Passed:
		return "passed"
	case Skipped:
		return "skipped"
	case Resigned:
		return "resigned"
	case Dominated:
		return "dominated"
	case Ended:
		return "ended"
	}
	return "unknown"
}

// Outcome describes one completed turn. Mover is the player who acted.
// Pos and Flipped are set when a disc was placed. Winner is None for a tie and
// is only meaningful once Terminal returns true. Black and White hold the disc
// counts after the turn.
type Outcome struct {
	Kind    OutcomeKind
	Mover   Color
	Pos     Pos
	Flipped int
	Winner  Color
	Black   int
	White   int
}

// Terminal returns true if the outcome ended the game.
func (o Outcome) Terminal() bool {
	return o.Kind == Resigned || o.Kind == Dominated || o.Kind == Ended
}

// Margin returns the difference in disc counts, always non-negative.
func (o Outcome) Margin() int {
	if o.Black > o.White {
		return o.Black - o.White
	}
	return o.White - o.Black
}

// Message returns a status line suitable for display.
func (o Outcome) Message() string {
	switch o.Kind {
	case Placed:
		return fmt.Sprintf("%s played %s, flipping %d", o.Mover, o.Pos, o.Flipped)
	case Passed:
		return fmt.Sprintf("%s passed", o.Mover)
	case Skipped:
		return fmt.Sprintf("%s has no legal move, %s plays again", o.Mover.Opponent(), o.Mover)
	case Resigned:
		return fmt.Sprintf("%s resigned, %s wins", o.Mover, o.Winner)
	case Dominated:
		return fmt.Sprintf("%s wins by domination", o.Winner)
	case Ended:
		if o.Winner == None {
			return fmt.Sprintf("Tie game, %d to %d", o.Black, o.White)
		}
		return fmt.Sprintf("%s wins by %d points (%d to %d)", o.Winner, o.Margin(), o.Black, o.White)
	}
	return ""
}
