package ui

import (
	"fmt"

	"the-snake/game"
	"the-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// cellColumns is how many terminal columns one grid cell takes, so cells
// come out roughly square.
const cellColumns = 2

var terminalKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

// TerminalWindow is a game.Window drawn in a terminal with tcell.
type TerminalWindow struct {
	screen tcell.Screen
	ticker *game.Ticker
}

// NewTerminalScreen opens the controlling terminal.
func NewTerminalScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	return s, nil
}

func NewTerminalWindow(screen tcell.Screen, speed int) (*TerminalWindow, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &TerminalWindow{
		screen: screen,
		ticker: game.NewTicker(speed),
	}, nil
}

func (w *TerminalWindow) Close() {
	w.screen.Fini()
}

func (w *TerminalWindow) WaitTick() {
	w.ticker.Wait()
}

// PollEvents drains the events tcell has buffered without blocking.
func (w *TerminalWindow) PollEvents() []game.Event {
	var events []game.Event
	for w.screen.HasPendingEvent() {
		ev, ok := w.screen.PollEvent().(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			events = append(events, game.Event{Kind: game.Quit})
		default:
			if dir, ok := terminalKeys[ev.Key()]; ok {
				events = append(events, game.Event{Kind: game.KeyDown, Direction: dir})
			}
		}
	}
	return events
}

func (w *TerminalWindow) BeginFrame() {
	w.screen.Clear()
}

func (w *TerminalWindow) Present() {
	w.screen.Show()
}

func (w *TerminalWindow) FillCell(p types.Point, fill, border types.Color) {
	style := tcell.StyleDefault.Background(toTcell(fill)).Foreground(toTcell(border))
	w.setCell(p, '[', ']', style)
}

func (w *TerminalWindow) ClearCell(p types.Point, bg types.Color) {
	w.setCell(p, ' ', ' ', tcell.StyleDefault.Background(toTcell(bg)))
}

// setCell writes one grid cell. Cells off the board are not drawn, matching
// what a fixed-size window would show.
func (w *TerminalWindow) setCell(p types.Point, left, right rune, style tcell.Style) {
	if p.X < 0 || p.X >= types.ScreenWidth || p.Y < 0 || p.Y >= types.ScreenHeight {
		return
	}
	col, row := p.X/types.GridSize*cellColumns, p.Y/types.GridSize
	w.screen.SetContent(col, row, left, nil, style)
	w.screen.SetContent(col+1, row, right, nil, style)
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
