package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reversi-term/config"
	"reversi-term/engine"
	"reversi-term/types"
)

func newState(t *testing.T) *types.BoardState {
	t.Helper()
	s, err := engine.NewSession(engine.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return s.GetBoardState()
}

func TestCellRune(t *testing.T) {
	state := newState(t)
	theme := config.DefaultTheme

	assert.Equal(t, theme.Symbols.WhiteDisc, cellRune(theme, state, types.Pos{Row: 4, Col: 4}))
	assert.Equal(t, theme.Symbols.BlackDisc, cellRune(theme, state, types.Pos{Row: 4, Col: 5}))
	assert.Equal(t, theme.Symbols.Legal, cellRune(theme, state, types.Pos{Row: 3, Col: 4}))
	assert.Equal(t, theme.Symbols.Empty, cellRune(theme, state, types.Pos{Row: 3, Col: 3}))
	assert.Equal(t, theme.Symbols.Empty, cellRune(theme, state, types.Pos{Row: 1, Col: 1}))

	theme.ShowCandidates = true
	assert.Equal(t, theme.Symbols.Candidate, cellRune(theme, state, types.Pos{Row: 3, Col: 3}))
	assert.Equal(t, theme.Symbols.Empty, cellRune(theme, state, types.Pos{Row: 1, Col: 1}))

	theme.ShowLegalMoves = false
	assert.Equal(t, theme.Symbols.Candidate, cellRune(theme, state, types.Pos{Row: 3, Col: 4}))
}

func TestTextRenderer(t *testing.T) {
	var out strings.Builder
	theme := config.DefaultTheme
	theme.Symbols.BlackDisc = 'B'
	theme.Symbols.WhiteDisc = 'W'
	theme.Symbols.Empty = '.'
	theme.Symbols.Legal = '+'
	r := NewTextRenderer(&out, theme)

	r.Render(newState(t))
	text := out.String()
	assert.Contains(t, text, "    a b c d e f g h\n")
	assert.Contains(t, text, " 3  . . . + . . . .\n")
	assert.Contains(t, text, " 4  . . + W B . . .\n")
	assert.Contains(t, text, " 5  . . . B W + . .\n")
	assert.Contains(t, text, "B Black 2   W White 2")
	assert.Contains(t, text, "B Black to move")

	out.Reset()
	r.Notify("Invalid move, try again")
	assert.Equal(t, " Invalid move, try again\n", out.String())
}

func TestTextRendererGameOver(t *testing.T) {
	s, err := engine.NewSession(engine.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	_, err = s.Resign()
	require.NoError(t, err)

	var out strings.Builder
	NewTextRenderer(&out, config.DefaultTheme).Render(s.GetBoardState())
	assert.Contains(t, out.String(), "Black resigned, White wins")
	assert.Contains(t, out.String(), "Game over")
	assert.NotContains(t, out.String(), "to move")
}

func TestBoardUI(t *testing.T) {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	board := NewBoardUI(&cfg, hint)
	CreateGameLayout(board, hint)

	s, err := engine.NewSession(engine.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	board.ConnectEngine(s)
	require.Contains(t, hint.GetText(true), "Black to move")

	// Playing without a selection does nothing
	board.PlayMove()
	require.Equal(t, types.BlackToMove, s.Turn())

	board.MoveSelection(0, 0)
	require.Equal(t, &types.Pos{Row: 3, Col: 4}, board.SelectedTile())

	board.Pass()
	require.Contains(t, hint.GetText(true), "Cannot pass")

	board.PlayMove()
	require.Equal(t, types.WhiteToMove, s.Turn())
	require.Len(t, board.History(), 1)
	require.Contains(t, hint.GetText(true), "Black played d3, flipping 1")
	require.Contains(t, hint.GetText(true), "White to move")

	// Same tile is now occupied
	board.PlayMove()
	require.Contains(t, hint.GetText(true), "Invalid move")
	require.Equal(t, types.WhiteToMove, s.Turn())

	board.MoveSelection(-1, 0)
	require.Equal(t, &types.Pos{Row: 3, Col: 3}, board.SelectedTile())
	board.ResetSelection()
	require.Nil(t, board.SelectedTile())

	board.Resign()
	require.True(t, board.IsFinished())
	require.Contains(t, hint.GetText(true), "White resigned, Black wins")
	require.Nil(t, board.SelectedTile())

	board.MoveSelection(1, 0)
	require.Nil(t, board.SelectedTile())
}

func TestInfoText(t *testing.T) {
	s, err := engine.NewSession(engine.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	_, err = s.PlayMove(3, 4)
	require.NoError(t, err)

	text := infoText(s.GetBoardState(), s.History)
	assert.Contains(t, text, "Black:[-:-:-] 4")
	assert.Contains(t, text, "White:[-:-:-] 1")
	assert.Contains(t, text, "d3 +1")
	assert.Empty(t, infoText(nil, nil))
}
