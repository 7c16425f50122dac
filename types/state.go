package types

import "golang.org/x/exp/slices"

// BoardState is a snapshot of a game handed to renderers.
// Cells is indexed as Cells[row-1][col-1].
type BoardState struct {
	MoveNumber int
	Turn       TurnState
	Cells      [BoardSize][BoardSize]Cell
	Black      int
	White      int
	LastMove   Pos
	LegalMoves []Pos
	Outcome    *Outcome
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Turn.Over()
}

// At returns the cell at the given position. Out of range positions read as Blocked.
func (b *BoardState) At(p Pos) Cell {
	if !p.Valid() {
		return Blocked
	}
	return b.Cells[p.Row-1][p.Col-1]
}

// IsLegal returns true if p is a legal move for the player to move.
func (b *BoardState) IsLegal(p Pos) bool {
	return slices.Contains(b.LegalMoves, p)
}
