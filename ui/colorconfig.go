package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtiles/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoardColor  int
	selectedStagedColor int
	editingStaged       bool // true = editing staged highlight, false = board color
}

// Common board backgrounds to choose from (dark, low-contrast tones)
var boardColors = []struct {
	code int
	name string
}{
	{232, "Near Black"},
	{233, "Charcoal"},
	{234, "Dark Gray"},
	{235, "Graphite"},
	{236, "Slate Gray"},
	{237, "Gray"},
	{238, "Medium Gray"},
	{17, "Navy Blue"},
	{18, "Dark Blue"},
	{22, "Dark Green"},
	{23, "Teal"},
	{52, "Dark Maroon"},
	{53, "Plum"},
	{58, "Olive"},
	{94, "Saddle Brown"},
}

// Staged-tile highlight colors (must stand out against the board)
var stagedColors = []struct {
	code int
	name string
}{
	{22, "Dark Green"},
	{28, "Green"},
	{34, "Bright Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{25, "Blue"},
	{54, "Purple"},
	{88, "Dark Red"},
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Gold"},
	{240, "Gray"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                 cfg,
		onDone:              onDone,
		selectedBoardColor:  cfg.Theme.Colors.BoardColor,
		selectedStagedColor: cfg.Theme.Colors.StagedColorBG,
		editingStaged:       false,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	// Populate with board colors initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingStaged {
			if index >= 0 && index < len(stagedColors) {
				cc.selectedStagedColor = stagedColors[index].code
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.selectedBoardColor = boardColors[index].code
			}
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingStaged {
			if index >= 0 && index < len(stagedColors) {
				cc.cfg.Theme.Colors.StagedColorBG = cc.selectedStagedColor
				cc.cfg.Save()
				// Switch back to board color selection
				cc.editingStaged = false
				cc.populateColorList()
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
				cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor + 1
				cc.cfg.Save()
				onDone()
			}
		}
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingStaged {
		cc.colorList.SetTitle(" Select Staged Highlight (Tab: switch to board) ")
		for i, c := range stagedColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		// Set current selection
		for i, c := range stagedColors {
			if c.code == cc.selectedStagedColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to highlight) ")
		for i, c := range boardColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		// Set current selection
		for i, c := range boardColors {
			if c.code == cc.selectedBoardColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// Draw a mini tile board preview with the selected colors
	boardBG := tcell.PaletteColor(cc.selectedBoardColor)
	boardBGAlt := tcell.PaletteColor(cc.selectedBoardColor + 1)
	stagedBG := tcell.PaletteColor(cc.selectedStagedColor)
	emptyFG := tcell.PaletteColor(cc.cfg.Theme.Colors.EmptyColor)

	startX := x + 2
	startY := y + 1
	size := 7

	if width < 20 || height < 10 {
		return x, y, width, height
	}

	// Sample placements for preview, one of them staged.
	symbols := cc.cfg.Theme.Symbols
	tiles := map[[2]int]struct {
		r      rune
		color  int
		staged bool
	}{
		{2, 2}: {symbols.Circle, cc.cfg.Theme.Colors.Red, false},
		{3, 2}: {symbols.Square, cc.cfg.Theme.Colors.Blue, false},
		{4, 2}: {symbols.Clover, cc.cfg.Theme.Colors.Green, false},
		{3, 3}: {symbols.Diamond, cc.cfg.Theme.Colors.Yellow, false},
		{3, 4}: {symbols.Asterisk, cc.cfg.Theme.Colors.Purple, true},
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			screenX := startX + col*2
			screenY := startY + row

			bg := boardBG
			if cc.cfg.Theme.DrawCheckerboard && (col+row)%2 != 0 {
				bg = boardBGAlt
			}
			char := symbols.EmptyCell
			fg := emptyFG

			if t, ok := tiles[[2]int{col, row}]; ok {
				char = t.r
				fg = tcell.PaletteColor(t.color)
				if t.staged {
					bg = stagedBG
				}
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(screenX, screenY, char, nil, style)
			screen.SetContent(screenX+1, screenY, ' ', nil, style)
		}
	}

	// Draw color info
	infoStyle := tcell.StyleDefault
	var info string
	if cc.editingStaged {
		info = fmt.Sprintf("Staged: %d  Board: %d", cc.selectedStagedColor, cc.selectedBoardColor)
	} else {
		info = fmt.Sprintf("Board: %d  Staged: %d", cc.selectedBoardColor, cc.selectedStagedColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, infoStyle)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and staged highlight editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingStaged = !cc.editingStaged
	cc.populateColorList()
}
