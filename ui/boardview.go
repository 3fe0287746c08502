// Package ui specifies custom controls for tview to assist in playing
// termtiles in the terminal.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtiles/config"
	"termtiles/game"
)

// BoardView draws the sparse board through a scrolling viewport. Each board
// cell is two screen cells wide for a square appearance. A keyboard cursor
// stands in for the mouse: the session stages the selected hand tile at the
// cursor cell, and the viewport follows the cursor across the unbounded
// board.
type BoardView struct {
	Box     *tview.Box
	session *game.Session
	cfg     *config.Config

	curX, curY   int // cursor, board coords
	camX, camY   int // viewport top-left, board coords
	viewW, viewH int // viewport size in board cells, set during draw
	camSet       bool

	tileColors [game.NumColors]tcell.Color
	shapeRunes [game.NumShapes]rune
}

// NewBoardView creates the board widget for the session.
func NewBoardView(session *game.Session, c *config.Config) *BoardView {
	b := &BoardView{
		Box:     tview.NewBox(),
		session: session,
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		b.draw(screen, x, y, width, height)
		return x, y, width, height
	})
	return b
}

// SetConfig applies the theme.
func (b *BoardView) SetConfig(c *config.Config) {
	b.tileColors = [game.NumColors]tcell.Color{
		game.Red:    tcell.PaletteColor(c.Theme.Colors.Red),
		game.Orange: tcell.PaletteColor(c.Theme.Colors.Orange),
		game.Yellow: tcell.PaletteColor(c.Theme.Colors.Yellow),
		game.Green:  tcell.PaletteColor(c.Theme.Colors.Green),
		game.Blue:   tcell.PaletteColor(c.Theme.Colors.Blue),
		game.Purple: tcell.PaletteColor(c.Theme.Colors.Purple),
	}
	b.shapeRunes = [game.NumShapes]rune{
		game.Circle:    c.Theme.Symbols.Circle,
		game.Square:    c.Theme.Symbols.Square,
		game.Diamond:   c.Theme.Symbols.Diamond,
		game.Fourpoint: c.Theme.Symbols.Fourpoint,
		game.Clover:    c.Theme.Symbols.Clover,
		game.Asterisk:  c.Theme.Symbols.Asterisk,
	}
	b.cfg = c
}

// Cursor returns the board cell under the cursor.
func (b *BoardView) Cursor() game.Coord {
	return game.Coord{X: b.curX, Y: b.curY}
}

// MoveCursor moves the cursor by the given delta. The board is unbounded, so
// there is nothing to clamp against; the viewport follows on the next draw.
func (b *BoardView) MoveCursor(h, v int) {
	b.curX += h
	b.curY += v
}

// followCursor shifts the viewport the minimum amount needed to keep the
// cursor visible, with a one-cell margin where there is room.
func (b *BoardView) followCursor() {
	margin := 1
	if b.viewW <= 2*margin || b.viewH <= 2*margin {
		margin = 0
	}
	if b.curX < b.camX+margin {
		b.camX = b.curX - margin
	}
	if b.curX >= b.camX+b.viewW-margin {
		b.camX = b.curX - b.viewW + 1 + margin
	}
	if b.curY < b.camY+margin {
		b.camY = b.curY - margin
	}
	if b.curY >= b.camY+b.viewH-margin {
		b.camY = b.curY - b.viewH + 1 + margin
	}
}

func (b *BoardView) draw(screen tcell.Screen, x, y, width, height int) {
	// 2 characters per cell for square appearance
	b.viewW, b.viewH = width/2, height
	if b.viewW < 1 || b.viewH < 1 {
		return
	}
	if !b.camSet {
		// First draw: center the viewport on the cursor.
		b.camX = b.curX - b.viewW/2
		b.camY = b.curY - b.viewH/2
		b.camSet = true
	}
	b.followCursor()

	colors := b.cfg.Theme.Colors
	boardBG := tcell.PaletteColor(colors.BoardColor)
	boardBGAlt := tcell.PaletteColor(colors.BoardColorAlt)
	emptyFG := tcell.PaletteColor(colors.EmptyColor)
	cursorBG := tcell.PaletteColor(colors.CursorColorBG)
	stagedBG := tcell.PaletteColor(colors.StagedColorBG)

	for vy := 0; vy < b.viewH; vy++ {
		for vx := 0; vx < b.viewW; vx++ {
			c := game.Coord{X: b.camX + vx, Y: b.camY + vy}

			bg := boardBG
			if b.cfg.Theme.DrawCheckerboard && (c.X+c.Y)%2 != 0 {
				bg = boardBGAlt
			}
			drawRune := b.cfg.Theme.Symbols.EmptyCell
			fg := emptyFG

			if t, ok := b.session.Board().At(c); ok {
				drawRune = b.shapeRunes[t.Shape]
				fg = b.tileColors[t.Color]
			} else if t, ok := b.session.StagedAt(c); ok {
				// Staged tiles get a highlight background, the terminal
				// version of the original's green outline.
				drawRune = b.shapeRunes[t.Shape]
				fg = b.tileColors[t.Color]
				bg = stagedBG
			}
			if c.X == b.curX && c.Y == b.curY {
				bg = cursorBG
			}

			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(x+vx*2, y+vy, drawRune, nil, style)
			screen.SetContent(x+vx*2+1, y+vy, ' ', nil, style)
		}
	}
}
