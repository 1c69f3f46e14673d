package entity

import "the-snake/game/types"

type Food struct {
	Position types.Point
	Color    types.Color
}

func NewFood(rng types.Rand) *Food {
	f := &Food{Color: types.AppleColor}
	f.Relocate(rng)
	return f
}

// Relocate moves the food to a random cell. Both axes draw from the
// inclusive range [0, cells], so the row and column just past the board
// edge can be picked too.
func (f *Food) Relocate(rng types.Rand) {
	f.Position = types.Point{
		X: rng.Intn(types.GridWidth+1) * types.GridSize,
		Y: rng.Intn(types.GridHeight+1) * types.GridSize,
	}
}

func (f *Food) Draw(c types.Canvas) {
	c.FillCell(f.Position, f.Color, types.BorderColor)
}
