package board

import "reversi-term/types"

// captureLine walks from (row, col) in direction d and returns the opponent
// discs that a c disc placed there would flip. The run must be terminated by
// a c disc; a run that reaches the edge or an empty cell captures nothing.
func captureLine(g *Grid, c types.Color, row, col int, d Direction) []types.Pos {
	dr, dc := d.Delta()
	opp := types.DiscOf(c.Opponent())
	own := types.DiscOf(c)

	var run []types.Pos
	r, k := row+dr, col+dc
	for InBounds(r, k) && g.At(r, k) == opp {
		run = append(run, types.Pos{Row: r, Col: k})
		r, k = r+dr, k+dc
	}
	if len(run) == 0 || !InBounds(r, k) || g.At(r, k) != own {
		return nil
	}
	return run
}

// Captures returns every disc that placing c at (row, col) would flip, across
// all eight directions. The grid is not modified. Targets that are not
// Candidate cells capture nothing.
func Captures(g *Grid, c types.Color, row, col int) []types.Pos {
	if c == types.None || !InBounds(row, col) || g.At(row, col) != types.Candidate {
		return nil
	}
	var flips []types.Pos
	// Every direction is walked; a placement may close several lines at once.
	for _, d := range Directions {
		flips = append(flips, captureLine(g, c, row, col, d)...)
	}
	return flips
}

// Place puts a c disc at (row, col) and flips every captured disc. It reports
// the flipped positions and whether the placement happened. On failure the
// grid is untouched. Candidates are not recomputed here.
func Place(g *Grid, c types.Color, row, col int) ([]types.Pos, bool) {
	flips := Captures(g, c, row, col)
	if len(flips) == 0 {
		return nil, false
	}
	disc := types.DiscOf(c)
	g.set(row, col, disc)
	for _, p := range flips {
		g.set(p.Row, p.Col, disc)
	}
	return flips, true
}

// AttemptPlace places a c disc at (row, col) if it captures at least one
// opposing disc, returning false and leaving the grid unmodified otherwise.
func AttemptPlace(g *Grid, c types.Color, row, col int) bool {
	_, ok := Place(g, c, row, col)
	return ok
}

// LegalMoves returns every cell where c could place a disc, in row-major order.
func LegalMoves(g *Grid, c types.Color) []types.Pos {
	var moves []types.Pos
	for _, p := range CandidateCells(g) {
		if len(Captures(g, c, p.Row, p.Col)) > 0 {
			moves = append(moves, p)
		}
	}
	return moves
}

// HasLegalMove reports whether c has at least one legal placement.
func HasLegalMove(g *Grid, c types.Color) bool {
	for _, p := range CandidateCells(g) {
		if len(Captures(g, c, p.Row, p.Col)) > 0 {
			return true
		}
	}
	return false
}
