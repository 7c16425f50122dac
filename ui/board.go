// Package ui specifies custom controls for tview to play Reversi in the
// terminal, and a plain text renderer for line mode.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-term/config"
	"reversi-term/engine"
	"reversi-term/types"
)

// style indexes
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleMarker
	styleLegal
	styleCursorFG
	styleCursorBG
	styleLastPlayed
)

type BoardUI struct {
	Box         *tview.Box
	BoardState  *types.BoardState
	hint        *tview.TextView
	cfg         *config.Config
	selX        int
	selY        int
	notice      string
	eng         engine.GameEngine
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	moveHistory []types.Outcome
}

func (g *BoardUI) SelectedTile() *types.Pos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.Pos{Row: g.selY, Col: g.selX}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState == nil || g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX = g.BoardState.LastMove.Col
		g.selY = g.BoardState.LastMove.Row
		if !g.BoardState.LastMove.Valid() {
			// No previous move made, start on the first legal move
			g.selX, g.selY = types.BoardSize/2, types.BoardSize/2
			if len(g.BoardState.LegalMoves) > 0 {
				g.selX = g.BoardState.LegalMoves[0].Col
				g.selY = g.BoardState.LegalMoves[0].Row
			}
		}
		return
	}
	if g.selX+h < 1 || g.selX+h > types.BoardSize {
		return
	}
	if g.selY+v < 1 || g.selY+v > types.BoardSize {
		return
	}
	g.selX += h
	g.selY += v
}

// ResetSelection drops the cursor, discarding a partly chosen move.
func (g *BoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewBoardUI(c *config.Config, hint *tview.TextView) *BoardUI {
	boardUI := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
	}
	boardUI.SetConfig(c)
	boardUI.Box.SetDrawFunc(boardUI.draw)
	return boardUI
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	if g.BoardState == nil {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	sel := g.SelectedTile()

	for row := 1; row <= types.BoardSize; row++ {
		for col := 1; col <= types.BoardSize; col++ {
			p := types.Pos{Row: row, Col: col}
			bg := g.styles[styleBoard]
			if (row+col)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}

			var fg tcell.Color
			switch cell := g.BoardState.At(p); {
			case cell == types.BlackDisc:
				fg = g.styles[styleBlack]
			case cell == types.WhiteDisc:
				fg = g.styles[styleWhite]
			case theme.ShowLegalMoves && g.BoardState.IsLegal(p):
				fg = g.styles[styleLegal]
			default:
				fg = g.styles[styleMarker]
			}

			if sel != nil && *sel == p {
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				} else {
					fg = g.styles[styleCursorFG]
				}
			} else if p == g.BoardState.LastMove && theme.DrawLastPlayedBackground {
				bg = g.styles[styleLastPlayed]
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			drawCell(screen, style, cellRune(theme, g.BoardState, p), col-1, row-1, x+3, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	return x, y, types.BoardSize*2 + 3, types.BoardSize + 1
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e
	g.notice = ""
	g.moveHistory = nil
	g.ResetSelection()

	e.OnMove(func(outcome types.Outcome, boardState *types.BoardState) {
		g.moveHistory = append(g.moveHistory, outcome)
		g.BoardState = boardState
		g.refreshHint()
	})

	e.OnGameEnd(func(outcome types.Outcome) {
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
}

// PlayMove plays a disc on the selected tile.
func (g *BoardUI) PlayMove() {
	sel := g.SelectedTile()
	if g.eng == nil || sel == nil || g.IsFinished() {
		return
	}
	g.notice = ""
	if _, err := g.eng.PlayMove(sel.Row, sel.Col); err != nil {
		g.reject(err)
	}
}

// Pass passes the current turn.
func (g *BoardUI) Pass() {
	if g.eng == nil || g.IsFinished() {
		return
	}
	g.notice = ""
	if _, err := g.eng.Pass(); err != nil {
		g.reject(err)
	}
}

// Resign resigns for the player to move.
func (g *BoardUI) Resign() {
	if g.eng == nil || g.IsFinished() {
		return
	}
	g.notice = ""
	if _, err := g.eng.Resign(); err != nil {
		g.reject(err)
	}
}

func (g *BoardUI) reject(err error) {
	switch {
	case errors.Is(err, engine.ErrIllegalMove):
		g.notice = "Invalid move"
	case errors.Is(err, engine.ErrCannotPass):
		g.notice = "Cannot pass, a legal move is available"
	default:
		g.notice = err.Error()
	}
	g.refreshHint()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.MarkerColor),       // styleMarker
		tcell.PaletteColor(c.Theme.Colors.LegalColor),        // styleLegal
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.BoardState == nil {
		g.hint.SetText("")
		return
	}

	var statusLine, turnLine, controlsLine string
	if g.notice != "" {
		statusLine = fmt.Sprintf("  ✗ %s\n", g.notice)
	} else if g.BoardState.Outcome != nil {
		statusLine = fmt.Sprintf("  %s\n", g.BoardState.Outcome.Message())
	}

	if g.BoardState.Finished() {
		turnLine = "  Game over\n"
		controlsLine = "  n · new game   q · quit"
	} else {
		mover := g.BoardState.Turn.Mover()
		turnLine = fmt.Sprintf("  %c %s to move\n", discRune(g.cfg.Theme, mover), mover)
		controlsLine = "  hjkl/↑↓←→ move   ⏎ play   u undo   p pass   r resign   q quit"
	}

	g.hint.SetText(statusLine + turnLine + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.BoardState != nil && g.BoardState.Finished()
}

// History returns the outcomes seen since the engine was connected.
func (g *BoardUI) History() []types.Outcome {
	return g.moveHistory
}

// drawCell draws a cell 2 characters wide.
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])

	for col := 1; col <= types.BoardSize; col++ {
		_style := style
		if col == ui.selX {
			_style = highlight
		} else if col == ui.BoardState.LastMove.Col {
			_style = lpHighlight
		}
		s.SetContent(x+3+(col-1)*2, y+types.BoardSize, 'a'+rune(col-1), nil, _style)
		s.SetContent(x+3+(col-1)*2+1, y+types.BoardSize, ' ', nil, _style)
	}

	for row := 1; row <= types.BoardSize; row++ {
		_style := style
		if row == ui.selY {
			_style = highlight
		} else if row == ui.BoardState.LastMove.Row {
			_style = lpHighlight
		}
		s.SetContent(x+1, y+row-1, '0'+rune(row), nil, _style)
	}
}
