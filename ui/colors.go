package ui

import "github.com/gdamore/tcell/v2"

// PanelColors defines the palette for the chrome around the board.
var PanelColors = struct {
	Hint     tcell.Color // Dim gray for hints and empty slots
	Selected tcell.Color // Bright blue for selected items
}{
	Hint:     tcell.PaletteColor(245), // Dim gray
	Selected: tcell.PaletteColor(109), // Bright blue
}
