package display

// Grid is the full tile matrix for one board frame. The fixed array type
// makes it impossible to build a frame of any other shape.
type Grid [Rows][Cols]int

// ColorTestGrid fills every cell with the nine color tiles in row-major
// cycling order: cell i receives code TileRed + i%ColorTileCount. Hardware
// diagnostic only.
func ColorTestGrid() Grid {
	var g Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			g[r][c] = TileRed + (r*Cols+c)%ColorTileCount
		}
	}
	return g
}
