// termtiles is a terminal prototype of a Qwirkle-like tile placement game:
// a sparse board, a six-tile hand, and a turn that stages placements until
// they are confirmed or taken back.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtiles/config"
	"termtiles/game"
	"termtiles/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSeed    = flag.Int64("seed", 0, "Bag shuffle seed (0 = time-based)")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var boardView *ui.BoardView
var handBar *ui.HandBar
var infoPanel *ui.InfoPanel
var gameHint *tview.TextView
var session *game.Session
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtiles %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session = game.NewSession(rand.New(rand.NewSource(seed)))

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬢ termtiles ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetTextColor(ui.PanelColors.Hint)
	boardView = ui.NewBoardView(session, cfg)
	handBar = ui.NewHandBar(session, cfg)
	infoPanel = ui.NewInfoPanel(session, boardView.Cursor)
	refreshHint()

	gameFrame := ui.CreateGameLayout(boardView, infoPanel, handBar, gameHint)

	// Game board input handling: the key bindings translate to the session's
	// intents (select a hand slot, place at the cursor cell, confirm, reset).
	boardView.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			boardView.MoveCursor(0, -1)
		case tcell.KeyDown:
			boardView.MoveCursor(0, 1)
		case tcell.KeyLeft:
			boardView.MoveCursor(-1, 0)
		case tcell.KeyRight:
			boardView.MoveCursor(1, 0)
		case tcell.KeyEnter:
			session.PlaceAt(boardView.Cursor())
		case tcell.KeyRune:
			switch r := event.Rune(); r {
			case '1', '2', '3', '4', '5', '6':
				session.SelectSlot(int(r - '1'))
			case 'h':
				boardView.MoveCursor(-1, 0)
			case 'j':
				boardView.MoveCursor(0, 1)
			case 'k':
				boardView.MoveCursor(0, -1)
			case 'l':
				boardView.MoveCursor(1, 0)
			case ' ':
				session.PlaceAt(boardView.Cursor())
			case 'c':
				session.Confirm()
			case 'r':
				session.Reset()
			case 't':
				rootPage.SwitchToPage("colors")
				return nil
			case 'q':
				app.Stop()
				return nil
			}
		}
		infoPanel.Refresh()
		refreshHint()
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the widgets with new colors
		boardView.SetConfig(cfg)
		handBar.SetConfig(cfg)
		rootPage.SwitchToPage("gameview")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("gameview")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("gameview", gameFrame, true, true)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// refreshHint rewrites the bottom hint bar for the current selection state.
func refreshHint() {
	line1 := "  1-6 select slot   hjkl/↑↓←→ move   ⏎ place"
	if i, ok := session.SelectedSlot(); ok {
		if t, ok := session.Hand().Slot(i); ok {
			line1 = fmt.Sprintf("  holding %s — ⏎ places it at the cursor", t)
		}
	}
	line2 := "  c confirm move   r reset hand   t theme   q quit"
	gameHint.SetText(line1 + "\n" + line2)
}
