package ui

import (
	"github.com/rivo/tview"
)

// CreateGameLayout assembles the main screen: the board with the info panel
// beside it, the hand bar underneath, and a compact hint bar at the bottom.
func CreateGameLayout(board *BoardView, info *InfoPanel, hand *HandBar, hint *tview.TextView) *tview.Flex {
	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)      // Board (flexible, takes remaining space)
	boardRow.AddItem(info.Box(), 26, 0, false)   // Info panel (fixed width)

	// Main vertical flex: board area, hand bar, compact hint bar
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hand.Box, 3, 0, false)
	mainFlex.AddItem(hint, 2, 0, false)

	return mainFlex
}
