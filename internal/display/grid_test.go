package display

import "testing"

func TestColorTestGrid_Geometry(t *testing.T) {
	g := ColorTestGrid()
	if len(g) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(g))
	}
	for r := range g {
		if len(g[r]) != Cols {
			t.Fatalf("row %d: expected %d cols, got %d", r, Cols, len(g[r]))
		}
	}
}

func TestColorTestGrid_CyclesColorTiles(t *testing.T) {
	g := ColorTestGrid()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			i := r*Cols + c
			want := TileRed + i%ColorTileCount
			if g[r][c] != want {
				t.Errorf("cell (%d,%d): expected %d, got %d", r, c, want, g[r][c])
			}
		}
	}
}

func TestColorTileRange(t *testing.T) {
	if TileRed != 63 || TileFilled != 71 {
		t.Errorf("color tiles must span 63..71, got %d..%d", TileRed, TileFilled)
	}
	if ColorTileCount != 9 {
		t.Errorf("expected 9 color tiles, got %d", ColorTileCount)
	}
}
