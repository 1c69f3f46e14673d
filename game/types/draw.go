package types

// Canvas is the drawing surface provided by a frontend. Cells are
// GridSize squares addressed by their top-left pixel.
type Canvas interface {
	// FillCell paints a filled cell with a one pixel border.
	FillCell(p Point, fill, border Color)
	// ClearCell paints the cell with the board background.
	ClearCell(p Point, bg Color)
}

// Drawable is anything that can render itself onto a Canvas.
type Drawable interface {
	Draw(c Canvas)
}
