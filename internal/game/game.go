package game

import (
	"errors"
	"fmt"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Board geometry
	Size      = 3
	CellCount = Size * Size
	Center    = 4
)

var (
	ErrInvalidMark  = errors.New("invalid player mark")
	ErrInvalidBoard = errors.New("invalid board encoding")
)

// Corners and Sides list the corner and edge-midpoint cells in ascending order.
var (
	Corners = [4]int{0, 2, 6, 8}
	Sides   = [4]int{1, 3, 5, 7}
)

// ParseMark converts user input into a PlayerMark. Case is ignored.
func ParseMark(s string) (PlayerMark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidMark, s)
}

// Opposite returns the other player's mark. Empty stays empty.
func (m PlayerMark) Opposite() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// Glyph is the single character used when printing or encoding a cell.
func (m PlayerMark) Glyph() byte {
	if m == None {
		return '_'
	}
	return m[0]
}

// RowCol splits a cell index into its row and column.
func RowCol(index int) (row, col int) {
	return index / Size, index % Size
}

// Index joins a row and column into a cell index.
func Index(row, col int) int {
	return row*Size + col
}

// OppositeCorner returns the point-symmetric corner (0<->8, 2<->6).
func OppositeCorner(corner int) int {
	return CellCount - 1 - corner
}
