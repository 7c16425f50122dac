package ui

import (
	"fmt"
	"io"
	"strings"

	"reversi-term/config"
	"reversi-term/types"
)

// TextRenderer prints the board as plain text, for line mode.
type TextRenderer struct {
	out   io.Writer
	theme config.Theme
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, theme config.Theme) *TextRenderer {
	return &TextRenderer{out: w, theme: theme}
}

// Render prints the grid, the disc counts, the last outcome and whose turn it is.
func (r *TextRenderer) Render(state *types.BoardState) {
	var sb strings.Builder

	sb.WriteString("\n   ")
	for col := 1; col <= types.BoardSize; col++ {
		fmt.Fprintf(&sb, " %c", 'a'+rune(col-1))
	}
	sb.WriteString("\n")
	for row := 1; row <= types.BoardSize; row++ {
		fmt.Fprintf(&sb, " %d ", row)
		for col := 1; col <= types.BoardSize; col++ {
			fmt.Fprintf(&sb, " %c", cellRune(r.theme, state, types.Pos{Row: row, Col: col}))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n %c Black %d   %c White %d\n",
		r.theme.Symbols.BlackDisc, state.Black, r.theme.Symbols.WhiteDisc, state.White)
	if state.Outcome != nil {
		fmt.Fprintf(&sb, " %s\n", state.Outcome.Message())
	}
	if state.Finished() {
		sb.WriteString(" Game over\n")
	} else {
		mover := state.Turn.Mover()
		fmt.Fprintf(&sb, " %c %s to move\n", discRune(r.theme, mover), mover)
	}

	io.WriteString(r.out, sb.String())
}

// Notify prints a one-line message, such as a rejected move.
func (r *TextRenderer) Notify(msg string) {
	fmt.Fprintf(r.out, " %s\n", msg)
}
