package board

import "reversi-term/types"

// MarkCandidates recomputes the candidate overlay from scratch: every empty
// cell becomes Blocked, then every empty neighbour of a disc becomes Candidate.
// Adjacency is necessary but not sufficient for a legal move.
func MarkCandidates(g *Grid) {
	for r := range g.cells {
		for c, cell := range g.cells[r] {
			if cell.IsEmpty() {
				g.cells[r][c] = types.Blocked
			}
		}
	}
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			if g.At(row, col).IsEmpty() {
				continue
			}
			for _, d := range Directions {
				dr, dc := d.Delta()
				nr, nc := row+dr, col+dc
				if InBounds(nr, nc) && g.At(nr, nc).IsEmpty() {
					g.set(nr, nc, types.Candidate)
				}
			}
		}
	}
}

// CandidateCells returns every Candidate cell in row-major order.
func CandidateCells(g *Grid) []types.Pos {
	var out []types.Pos
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			if g.At(row, col) == types.Candidate {
				out = append(out, types.Pos{Row: row, Col: col})
			}
		}
	}
	return out
}
