package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termtiles/game"
)

// InfoPanel displays session counters and the turn's staged placements
// alongside the board.
type InfoPanel struct {
	box     *tview.TextView
	session *game.Session
	cursor  func() game.Coord
}

// NewInfoPanel creates a new info panel. cursor reports the board cell the
// cursor is on.
func NewInfoPanel(session *game.Session, cursor func() game.Coord) *InfoPanel {
	panel := &InfoPanel{
		box:     tview.NewTextView(),
		session: session,
		cursor:  cursor,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	panel.Refresh()
	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// Refresh updates the panel text from the session.
func (p *InfoPanel) Refresh() {
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Bag:[-:-:-]    %3d\n", p.session.BagCount())
	text += fmt.Sprintf("[white]Hand:[-:-:-]   %3d\n", p.session.Hand().Occupied())
	text += fmt.Sprintf("[white]Board:[-:-:-]  %3d\n", p.session.Board().Len())
	text += fmt.Sprintf("[white]Cursor:[-:-:-] %s\n", p.cursor())

	if i, ok := p.session.SelectedSlot(); ok {
		if t, ok := p.session.Hand().Slot(i); ok {
			text += fmt.Sprintf("\n[yellow]Holding %s (slot %d)[-]\n", t, i+1)
		}
	}

	staged := p.session.Staged()
	if len(staged) > 0 {
		text += "\n[white::b]Staged[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		maxVisible := 10
		start := 0
		if len(staged) > maxVisible {
			start = len(staged) - maxVisible
		}
		for i := start; i < len(staged); i++ {
			pl := staged[i]
			text += fmt.Sprintf("[dimgray]%s[-] %s\n", pl.Coord, pl.Tile)
		}
		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}
