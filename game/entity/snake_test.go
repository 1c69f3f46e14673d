package entity

import (
	"testing"

	"the-snake/game/types"
)

// seqRand returns its values in order, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

type drawCall struct {
	p     types.Point
	fill  types.Color
	clear bool
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) FillCell(p types.Point, fill, border types.Color) {
	c.calls = append(c.calls, drawCall{p: p, fill: fill})
}

func (c *recordingCanvas) ClearCell(p types.Point, bg types.Color) {
	c.calls = append(c.calls, drawCall{p: p, fill: bg, clear: true})
}

func TestNewSnake(t *testing.T) {
	s := NewSnake()
	if s.Length != 1 || len(s.Body) != 1 {
		t.Fatalf("new snake length = %d, body = %d, want 1, 1", s.Length, len(s.Body))
	}
	if s.Head() != types.Center() {
		t.Errorf("head = %v, want %v", s.Head(), types.Center())
	}
	if s.Direction != types.Right {
		t.Errorf("direction = %v, want right", s.Direction)
	}
}

func TestReversalIsRejected(t *testing.T) {
	for _, d := range types.Directions {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSnake()
			s.Direction = d
			s.SetPendingDirection(d.Opposite())
			s.ApplyPendingDirection()
			if s.Direction != d {
				t.Errorf("direction = %v after reversing, want %v", s.Direction, d)
			}
		})
	}
}

func TestPendingDirectionLastCallWins(t *testing.T) {
	s := NewSnake()
	s.SetPendingDirection(types.Up)
	s.SetPendingDirection(types.Down)
	s.ApplyPendingDirection()
	if s.Direction != types.Down {
		t.Errorf("direction = %v, want down", s.Direction)
	}
	if s.Pending != types.None {
		t.Errorf("pending = %v after apply, want none", s.Pending)
	}

	s.ApplyPendingDirection()
	if s.Direction != types.Down {
		t.Errorf("direction changed to %v with nothing pending", s.Direction)
	}
}

func TestAdvanceWraps(t *testing.T) {
	last := func(n int) int { return (n - 1) * types.GridSize }
	tests := []struct {
		name string
		from types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge", types.Point{X: last(types.GridWidth), Y: 240}, types.Right, types.Point{X: 0, Y: 240}},
		{"left edge", types.Point{X: 0, Y: 240}, types.Left, types.Point{X: last(types.GridWidth), Y: 240}},
		{"bottom edge", types.Point{X: 320, Y: last(types.GridHeight)}, types.Down, types.Point{X: 320, Y: 0}},
		{"top edge", types.Point{X: 320, Y: 0}, types.Up, types.Point{X: 320, Y: last(types.GridHeight)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake()
			s.Body = []types.Point{tt.from}
			s.Direction = tt.dir
			if s.Advance(&seqRand{vals: []int{0}}) {
				t.Fatal("unexpected reset")
			}
			if s.Head() != tt.want {
				t.Errorf("head = %v, want %v", s.Head(), tt.want)
			}
		})
	}
}

func TestAdvanceWithoutGrowthKeepsLength(t *testing.T) {
	s := NewSnake()
	start := s.Head()
	s.Advance(&seqRand{vals: []int{0}})

	if len(s.Body) != 1 {
		t.Fatalf("body = %v, want a single cell", s.Body)
	}
	if want := start.Add(types.GridSize, 0); s.Head() != want {
		t.Errorf("head = %v, want %v", s.Head(), want)
	}
	if s.Last == nil || *s.Last != start {
		t.Errorf("last = %v, want %v", s.Last, start)
	}
}

func TestGrowth(t *testing.T) {
	rng := &seqRand{vals: []int{0}}
	s := NewSnake()
	s.Grow()

	s.Advance(rng)
	if len(s.Body) != 2 {
		t.Fatalf("body length = %d after growing, want 2", len(s.Body))
	}
	if s.Last != nil {
		t.Errorf("last = %v on a growth move, want nil", *s.Last)
	}

	for i := 0; i < 5; i++ {
		s.Advance(rng)
		if len(s.Body) > s.Length {
			t.Fatalf("body length %d exceeds target %d", len(s.Body), s.Length)
		}
	}
	if len(s.Body) != 2 {
		t.Errorf("body length = %d, want 2", len(s.Body))
	}
}

func TestSelfCollisionResets(t *testing.T) {
	s := NewSnake()
	s.Body = []types.Point{
		{X: 100, Y: 100},
		{X: 120, Y: 100},
		{X: 120, Y: 80},
		{X: 100, Y: 80},
		{X: 80, Y: 80},
	}
	s.Length = 5
	s.Direction = types.Up
	s.Pending = types.Left

	if !s.Advance(&seqRand{vals: []int{2}}) {
		t.Fatal("expected the snake to hit its body")
	}
	if s.Length != 1 || len(s.Body) != 1 || s.Head() != types.Center() {
		t.Errorf("after reset: length %d, body %v", s.Length, s.Body)
	}
	if s.Direction != types.Directions[2] {
		t.Errorf("direction = %v, want %v", s.Direction, types.Directions[2])
	}
	if s.Pending != types.None || s.Last != nil {
		t.Errorf("pending = %v, last = %v after reset", s.Pending, s.Last)
	}
}

func TestTailIsNotACollision(t *testing.T) {
	s := NewSnake()
	s.Body = []types.Point{
		{X: 100, Y: 100},
		{X: 120, Y: 100},
		{X: 120, Y: 80},
		{X: 100, Y: 80},
	}
	s.Length = 4
	s.Direction = types.Up

	if s.Advance(&seqRand{vals: []int{0}}) {
		t.Fatal("moving into the tail reset the snake")
	}
	if s.Head() != (types.Point{X: 100, Y: 80}) || len(s.Body) != 4 {
		t.Errorf("body = %v", s.Body)
	}
	if s.Last != nil {
		t.Errorf("last = %v, the old tail is now the head", *s.Last)
	}
}

func TestResetHeadingIsRandom(t *testing.T) {
	for i, want := range types.Directions {
		s := NewSnake()
		s.Reset(&seqRand{vals: []int{i}})
		if s.Direction != want {
			t.Errorf("Reset with draw %d: direction = %v, want %v", i, s.Direction, want)
		}
	}
}

func TestSnakeDrawOrder(t *testing.T) {
	s := NewSnake()
	s.Body = []types.Point{{X: 40, Y: 0}, {X: 20, Y: 0}}
	s.Length = 2
	s.Last = &types.Point{X: 0, Y: 0}

	c := &recordingCanvas{}
	s.Draw(c)

	want := []drawCall{
		{p: types.Point{X: 20, Y: 0}, fill: types.SnakeColor},
		{p: types.Point{X: 40, Y: 0}, fill: types.SnakeColor},
		{p: types.Point{X: 0, Y: 0}, fill: types.BackgroundColor, clear: true},
	}
	if len(c.calls) != len(want) {
		t.Fatalf("draw calls = %v, want %v", c.calls, want)
	}
	for i := range want {
		if c.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, c.calls[i], want[i])
		}
	}
}
