// Package board implements the 8x8 grid and the placement rules of Reversi:
// candidate marking, directional capture and scoring.
package board

import (
	"errors"
	"fmt"
	"strings"

	"reversi-term/types"
)

// ErrLayout is returned by Parse for malformed board text.
var ErrLayout = errors.New("invalid board layout")

const size = types.BoardSize

// Grid holds the cell states of one board. Rows and columns are 1-based.
type Grid struct {
	cells [size][size]types.Cell
}

// NewGrid returns the standard opening position with candidates marked.
func NewGrid() *Grid {
	g := &Grid{}
	mid := size / 2
	g.set(mid, mid, types.WhiteDisc)
	g.set(mid+1, mid+1, types.WhiteDisc)
	g.set(mid, mid+1, types.BlackDisc)
	g.set(mid+1, mid, types.BlackDisc)
	MarkCandidates(g)
	return g
}

// Parse builds a grid from one string per row, top row first. 'B' and 'W'
// (either case) are discs; '.', '*' and '-' are empty. Spaces are ignored.
// Candidates are recomputed from the discs.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) != size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrLayout, len(rows), size)
	}
	g := &Grid{}
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, r+1, len(line), size)
		}
		for c, ch := range line {
			switch ch {
			case 'B', 'b':
				g.set(r+1, c+1, types.BlackDisc)
			case 'W', 'w':
				g.set(r+1, c+1, types.WhiteDisc)
			case '.', '*', '-':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrLayout, ch, r+1, c+1)
			}
		}
	}
	MarkCandidates(g)
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 1 && row <= size && col >= 1 && col <= size
}

// At returns the cell at (row, col). Positions off the board read as Blocked.
func (g *Grid) At(row, col int) types.Cell {
	if !InBounds(row, col) {
		return types.Blocked
	}
	return g.cells[row-1][col-1]
}

func (g *Grid) set(row, col int, c types.Cell) {
	g.cells[row-1][col-1] = c
}

// Count returns the number of discs of the given color.
func (g *Grid) Count(c types.Color) int {
	n := 0
	for r := range g.cells {
		for _, cell := range g.cells[r] {
			if cell.Color() == c && c != types.None {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the cell array, indexed [row-1][col-1].
func (g *Grid) Cells() [size][size]types.Cell {
	return g.cells
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// String renders the grid with B, W, '*' for candidates and '.' for blocked cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.cells {
		for _, cell := range g.cells[r] {
			switch cell {
			case types.BlackDisc:
				sb.WriteByte('B')
			case types.WhiteDisc:
				sb.WriteByte('W')
			case types.Candidate:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
