package types

// Screen and grid dimensions, in pixels unless noted.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20
	GridWidth    = ScreenWidth / GridSize  // cells
	GridHeight   = ScreenHeight / GridSize // cells
)

// Speed is the number of game ticks per second.
const Speed = 20

// Point is a grid-aligned cell position in pixels.
type Point struct {
	X, Y int
}

// Add returns p moved by the given pixel offsets, wrapped around the board.
func (p Point) Add(dx, dy int) Point {
	return Point{
		X: wrap(p.X+dx, ScreenWidth),
		Y: wrap(p.Y+dy, ScreenHeight),
	}
}

// Center returns the starting cell in the middle of the board.
func Center() Point {
	return Point{X: ScreenWidth / 2, Y: ScreenHeight / 2}
}

// wrap is a modulo that never returns a negative value.
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

type Color struct {
	R, G, B uint8
}

var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

// Rand is the source of randomness for food placement and reset headings.
type Rand interface {
	Intn(n int) int
}
