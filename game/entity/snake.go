package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Body      []types.Point // head first
	Length    int           // target size; Body catches up after growth
	Direction types.Direction
	Pending   types.Direction
	Color     types.Color

	// Last is the cell vacated by the previous move, nil after growth, reset
	// or when the head moved straight into the old tail.
	Last *types.Point
}

func NewSnake() *Snake {
	return &Snake{
		Body:      []types.Point{types.Center()},
		Length:    1,
		Direction: types.Right, // Start moving right
		Color:     types.SnakeColor,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// SetPendingDirection buffers the next heading. A heading that reverses the
// current one is ignored; otherwise the latest call wins.
func (s *Snake) SetPendingDirection(dir types.Direction) {
	if dir == types.None || dir == s.Direction.Opposite() {
		return
	}
	s.Pending = dir
}

func (s *Snake) ApplyPendingDirection() {
	if s.Pending != types.None {
		s.Direction = s.Pending
		s.Pending = types.None
	}
}

// NextHead returns the cell the head moves into on the next step.
func (s *Snake) NextHead() types.Point {
	v := s.Direction.Vector()
	return s.Head().Add(v.X*types.GridSize, v.Y*types.GridSize)
}

// Advance moves the snake one cell, wrapping at the board edges. Running into
// its own body resets the snake instead; the return value reports that.
func (s *Snake) Advance(rng types.Rand) bool {
	newHead := s.NextHead()
	if s.HitsBody(newHead) {
		s.Reset(rng)
		return true
	}

	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	s.Last = nil
	if len(s.Body) > s.Length {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		if tail != newHead {
			s.Last = &tail
		}
	}
	return false
}

// HitsBody reports whether p lies on the body. The head and the last segment
// are never checked, so chasing the tail around a loop is allowed.
func (s *Snake) HitsBody(p types.Point) bool {
	if len(s.Body) < 3 {
		return false
	}
	for _, part := range s.Body[1 : len(s.Body)-1] {
		if p == part {
			return true
		}
	}
	return false
}

// Reset puts the snake back to its starting size at the board center with a
// random heading.
func (s *Snake) Reset(rng types.Rand) {
	s.Length = 1
	s.Body = []types.Point{types.Center()}
	s.Direction = types.Directions[rng.Intn(len(types.Directions))]
	s.Pending = types.None
	s.Last = nil
}

// Grow raises the target length by one; the tail is kept on the next move.
func (s *Snake) Grow() {
	s.Length++
}

// Draw renders the body, then the head, then blanks the vacated tail cell.
func (s *Snake) Draw(c types.Canvas) {
	for _, p := range s.Body[1:] {
		c.FillCell(p, s.Color, types.BorderColor)
	}
	c.FillCell(s.Head(), s.Color, types.BorderColor)
	if s.Last != nil {
		c.ClearCell(*s.Last, types.BackgroundColor)
	}
}
