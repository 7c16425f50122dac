// Package types contains shared data structures for reversi-term.
package types

import "fmt"

// BoardSize is the width and height of the board.
const BoardSize = 8

// Color identifies a player. None is used where no color applies, such as a tied result.
type Color uint8

const (
	None Color = iota
	Black
	White
)

// Opponent returns the other player's color.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return None
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Cell is the state of one square. Blocked and Candidate are both empty;
// Candidate marks an empty square next to at least one disc.
type Cell uint8

const (
	Blocked Cell = iota
	Candidate
	BlackDisc
	WhiteDisc
)

// DiscOf returns the disc cell of the given color.
func DiscOf(c Color) Cell {
	if c == White {
		return WhiteDisc
	}
	return BlackDisc
}

// IsEmpty returns true if no disc occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == Blocked || c == Candidate
}

// Color returns the color of the disc on the cell, or None when empty.
func (c Cell) Color() Color {
	switch c {
	case BlackDisc:
		return Black
	case WhiteDisc:
		return White
	}
	return None
}

// Pos is a board position. Rows and columns run from 1 to BoardSize.
type Pos struct {
	Row int
	Col int
}

// Valid returns true if the position is on the board.
func (p Pos) Valid() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

// String formats the position as column letter and row number, e.g. "d3".
func (p Pos) String() string {
	if !p.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col-1), p.Row)
}

// TurnState is the state of the turn machine.
type TurnState uint8

const (
	BlackToMove TurnState = iota + 1
	WhiteToMove
	GameOver
)

// ToMove returns the state in which c is to move.
func ToMove(c Color) TurnState {
	if c == White {
		return WhiteToMove
	}
	return BlackToMove
}

// Mover returns the color to move, or None once the game is over.
func (t TurnState) Mover() Color {
	switch t {
	case BlackToMove:
		return Black
	case WhiteToMove:
		return White
	}
	return None
}

// Over returns true if the game has ended.
func (t TurnState) Over() bool {
	return t == GameOver
}

func (t TurnState) String() string {
	switch t {
	case BlackToMove:
		return "Black to move"
	case WhiteToMove:
		return "White to move"
	case GameOver:
		return "Game over"
	}
	return "Unknown"
}
