package board

import "reversi-term/types"

// Score counts the discs of each color. The winner is the color with more
// discs, or None for a tie.
func Score(g *Grid) (winner types.Color, black, white int) {
	black = g.Count(types.Black)
	white = g.Count(types.White)
	switch {
	case black > white:
		winner = types.Black
	case white > black:
		winner = types.White
	default:
		winner = types.None
	}
	return winner, black, white
}
