package ui

import (
	"reversi-term/config"
	"reversi-term/types"
)

// cellRune picks the symbol for the cell at p. Empty cells show the legal move
// marker, then the candidate marker, depending on the theme.
func cellRune(theme config.Theme, state *types.BoardState, p types.Pos) rune {
	switch state.At(p) {
	case types.BlackDisc:
		return theme.Symbols.BlackDisc
	case types.WhiteDisc:
		return theme.Symbols.WhiteDisc
	case types.Candidate:
		if theme.ShowLegalMoves && state.IsLegal(p) {
			return theme.Symbols.Legal
		}
		if theme.ShowCandidates {
			return theme.Symbols.Candidate
		}
	}
	return theme.Symbols.Empty
}

func discRune(theme config.Theme, c types.Color) rune {
	if c == types.White {
		return theme.Symbols.WhiteDisc
	}
	return theme.Symbols.BlackDisc
}
