// Package display holds the board's character alphabet and everything that
// turns structured data into tiles: the sanitizer, the price formatter and
// the diagnostic color grid.
package display

import "fmt"

// Board geometry. Every grid in the system is exactly this shape.
const (
	Rows = 6
	Cols = 22
)

// BlankCode is the tile code for an empty cell.
const BlankCode = 0

// Color tile codes occupy a reserved range disjoint from the character codes.
const (
	TileRed = 63 + iota
	TileOrange
	TileYellow
	TileGreen
	TileBlue
	TileViolet
	TileWhite
	TileBlack
	TileFilled
)

// ColorTileCount is the number of solid color tiles the board supports.
const ColorTileCount = TileFilled - TileRed + 1

// charCodes maps every printable character the board supports to its tile
// code. Immutable after init.
var charCodes = map[rune]int{
	' ': 0,
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'I': 9, 'J': 10, 'K': 11, 'L': 12, 'M': 13, 'N': 14, 'O': 15, 'P': 16,
	'Q': 17, 'R': 18, 'S': 19, 'T': 20, 'U': 21, 'V': 22, 'W': 23, 'X': 24,
	'Y': 25, 'Z': 26,
	'1': 27, '2': 28, '3': 29, '4': 30, '5': 31, '6': 32, '7': 33, '8': 34,
	'9': 35, '0': 36,
	'!': 37, '@': 38, '#': 39, '$': 40, '(': 41, ')': 42,
	'-': 44, '+': 46, '&': 47, '=': 48, ';': 49, ':': 50,
	'\'': 52, '"': 53, '%': 54, ',': 55, '.': 56,
	'/': 59, '?': 60, '°': 62,
}

var codeChars map[int]rune

func init() {
	codeChars = make(map[int]rune, len(charCodes))
	for r, code := range charCodes {
		if code < 0 || code >= TileRed {
			panic(fmt.Sprintf("display: character %q maps to code %d outside the printable range", r, code))
		}
		if prev, dup := codeChars[code]; dup {
			panic(fmt.Sprintf("display: code %d assigned to both %q and %q", code, prev, r))
		}
		codeChars[code] = r
	}
}

// Supported reports whether r is directly representable on the board.
func Supported(r rune) bool {
	_, ok := charCodes[r]
	return ok
}

// CodeFor returns the tile code for a supported character.
func CodeFor(r rune) (int, bool) {
	code, ok := charCodes[r]
	return code, ok
}

// CharFor returns the character for a printable tile code.
func CharFor(code int) (rune, bool) {
	r, ok := codeChars[code]
	return r, ok
}
