package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"reversi-term/types"
)

// GameInfoPanel displays disc counts and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	history    func() []types.Outcome
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetHistory sets the function the panel reads the move list from.
func (p *GameInfoPanel) SetHistory(history func() []types.Outcome) {
	p.history = history
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(infoText(p.boardState, p.history))
}

// infoText builds the panel contents.
func infoText(state *types.BoardState, history func() []types.Outcome) string {
	if state == nil {
		return ""
	}

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Black:[-:-:-] %d\n", state.Black)
	text += fmt.Sprintf("[white]White:[-:-:-] %d\n", state.White)
	text += fmt.Sprintf("[white]Move:[-:-:-]  %d\n", state.MoveNumber)
	if !state.Finished() {
		text += fmt.Sprintf("[white]Legal:[-:-:-] %d\n", len(state.LegalMoves))
	}

	if history == nil {
		return text
	}
	moves := history()
	if len(moves) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	// Show the last N turns that fit
	maxVisible := 12
	start := 0
	if len(moves) > maxVisible {
		start = len(moves) - maxVisible
	}

	for i := start; i < len(moves); i++ {
		m := moves[i]

		colorStr := "[white]B[-]"
		if m.Mover == types.White {
			colorStr = "[dimgray]W[-]"
		}

		entry := m.Kind.String()
		if m.Pos.Valid() {
			entry = fmt.Sprintf("%s +%d", m.Pos, m.Flipped)
		}

		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, entry)
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	infoPanel.SetHistory(board.History)
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 5, 0, false)

	return mainFlex
}
