package ui

import (
	"errors"

	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrWindowNotReady = errors.New("raylib window could not be opened")

// raylibKeys maps the arrow keys to headings; everything else is dropped.
var raylibKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

// RaylibWindow is a game.Window backed by a raylib window.
type RaylibWindow struct {
	cellSize int32
	ticker   *game.Ticker
}

func NewRaylibWindow(title string, speed int) (*RaylibWindow, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.ScreenWidth, types.ScreenHeight, title)
	if !rl.IsWindowReady() {
		return nil, ErrWindowNotReady
	}

	w := &RaylibWindow{
		cellSize: types.GridSize,
		ticker:   game.NewTicker(speed),
	}
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(types.BackgroundColor))
	rl.EndDrawing()
	return w, nil
}

func (w *RaylibWindow) Close() {
	rl.CloseWindow()
}

func (w *RaylibWindow) WaitTick() {
	w.ticker.Wait()
}

func (w *RaylibWindow) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() {
		return append(events, game.Event{Kind: game.Quit})
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := raylibKeys[key]; ok {
			events = append(events, game.Event{Kind: game.KeyDown, Direction: dir})
		}
	}
	return events
}

func (w *RaylibWindow) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(types.BackgroundColor))
}

func (w *RaylibWindow) Present() {
	rl.EndDrawing()
}

func (w *RaylibWindow) FillCell(p types.Point, fill, border types.Color) {
	x, y := int32(p.X), int32(p.Y)
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toRaylib(fill))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toRaylib(border))
}

func (w *RaylibWindow) ClearCell(p types.Point, bg types.Color) {
	rl.DrawRectangle(int32(p.X), int32(p.Y), w.cellSize, w.cellSize, toRaylib(bg))
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
