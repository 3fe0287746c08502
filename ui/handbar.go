package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtiles/config"
	"termtiles/game"
)

// slotWidth is the drawn width of one hand slot in screen cells.
const slotWidth = 5

// HandBar draws the six hand slots along the bottom of the screen, with the
// selected slot highlighted and empty slots dimmed, the way the original
// window drew its hand row above the buttons.
type HandBar struct {
	Box     *tview.Box
	session *game.Session
	cfg     *config.Config

	tileColors [game.NumColors]tcell.Color
	shapeRunes [game.NumShapes]rune
}

// NewHandBar creates the hand widget for the session.
func NewHandBar(session *game.Session, c *config.Config) *HandBar {
	h := &HandBar{
		Box:     tview.NewBox(),
		session: session,
	}
	h.SetConfig(c)
	h.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		h.draw(screen, x, y, width, height)
		return x, y, width, height
	})
	return h
}

// SetConfig applies the theme.
func (h *HandBar) SetConfig(c *config.Config) {
	h.tileColors = [game.NumColors]tcell.Color{
		game.Red:    tcell.PaletteColor(c.Theme.Colors.Red),
		game.Orange: tcell.PaletteColor(c.Theme.Colors.Orange),
		game.Yellow: tcell.PaletteColor(c.Theme.Colors.Yellow),
		game.Green:  tcell.PaletteColor(c.Theme.Colors.Green),
		game.Blue:   tcell.PaletteColor(c.Theme.Colors.Blue),
		game.Purple: tcell.PaletteColor(c.Theme.Colors.Purple),
	}
	h.shapeRunes = [game.NumShapes]rune{
		game.Circle:    c.Theme.Symbols.Circle,
		game.Square:    c.Theme.Symbols.Square,
		game.Diamond:   c.Theme.Symbols.Diamond,
		game.Fourpoint: c.Theme.Symbols.Fourpoint,
		game.Clover:    c.Theme.Symbols.Clover,
		game.Asterisk:  c.Theme.Symbols.Asterisk,
	}
	h.cfg = c
}

func (h *HandBar) draw(screen tcell.Screen, x, y, width, height int) {
	if height < 1 {
		return
	}
	// Center the six slots, one column gap between them.
	totalW := game.HandSize*slotWidth + (game.HandSize - 1)
	startX := x + (width-totalW)/2
	if startX < x {
		startX = x
	}
	row := y + height/2

	slotBG := tcell.PaletteColor(h.cfg.Theme.Colors.HandSlotBG)
	selectedBG := tcell.PaletteColor(h.cfg.Theme.Colors.SelectedBG)
	selected, hasSelection := h.session.SelectedSlot()

	for i := 0; i < game.HandSize; i++ {
		bg := slotBG
		if hasSelection && i == selected {
			bg = selectedBG
		}
		left := startX + i*(slotWidth+1)

		label := rune('1' + i)
		labelFG := PanelColors.Hint
		if hasSelection && i == selected {
			labelFG = PanelColors.Selected
		}
		labelStyle := tcell.StyleDefault.Background(bg).Foreground(labelFG)
		var tileRune rune
		var tileStyle tcell.Style
		if t, ok := h.session.Hand().Slot(i); ok {
			tileRune = h.shapeRunes[t.Shape]
			tileStyle = tcell.StyleDefault.Background(bg).Foreground(h.tileColors[t.Color])
		} else {
			tileRune = '-'
			tileStyle = tcell.StyleDefault.Background(bg).Foreground(PanelColors.Hint)
		}

		fill := tcell.StyleDefault.Background(bg)
		screen.SetContent(left, row, ' ', nil, fill)
		screen.SetContent(left+1, row, label, nil, labelStyle)
		screen.SetContent(left+2, row, ' ', nil, fill)
		screen.SetContent(left+3, row, tileRune, nil, tileStyle)
		screen.SetContent(left+4, row, ' ', nil, fill)
	}
}
