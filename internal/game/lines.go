package game

// LineKind tells which family a line belongs to.
type LineKind int

const (
	KindRow LineKind = iota
	KindColumn
	KindDiagLeft  // 0, 4, 8
	KindDiagRight // 2, 4, 6
)

func (k LineKind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	case KindDiagLeft:
		return "diag-left"
	case KindDiagRight:
		return "diag-right"
	}
	return "unknown"
}

// Line is one of the eight winning triples.
type Line struct {
	Kind  LineKind
	Cells [Size]int
}

// Lines holds every row, column and diagonal of the board.
var Lines = [8]Line{
	{KindRow, [Size]int{0, 1, 2}},
	{KindRow, [Size]int{3, 4, 5}},
	{KindRow, [Size]int{6, 7, 8}},
	{KindColumn, [Size]int{0, 3, 6}},
	{KindColumn, [Size]int{1, 4, 7}},
	{KindColumn, [Size]int{2, 5, 8}},
	{KindDiagLeft, [Size]int{0, 4, 8}},
	{KindDiagRight, [Size]int{2, 4, 6}},
}

// LinesThrough returns the row and column of index plus the diagonals the
// cell actually lies on.
func LinesThrough(index int) []Line {
	row, col := RowCol(index)
	lines := []Line{Lines[row], Lines[Size+col]}
	if row == col {
		lines = append(lines, Lines[6])
	}
	if row+col == Size-1 {
		lines = append(lines, Lines[7])
	}
	return lines
}

// CountAlongLine counts the cells of line holding mark and the empty ones.
func CountAlongLine(b Board, line Line, mark PlayerMark) (own, empty int) {
	for _, i := range line.Cells {
		switch b[i] {
		case mark:
			own++
		case None:
			empty++
		}
	}
	return own, empty
}

// Classify returns the kinds of the lines through index whose counts for mark
// equal targetOwn and targetEmpty.
func Classify(b Board, index int, mark PlayerMark, targetEmpty, targetOwn int) []LineKind {
	var kinds []LineKind
	for _, line := range LinesThrough(index) {
		own, empty := CountAlongLine(b, line, mark)
		if own == targetOwn && empty == targetEmpty {
			kinds = append(kinds, line.Kind)
		}
	}
	return kinds
}

// MatchesPattern is the number of lines through index matching the pattern.
func MatchesPattern(b Board, index int, mark PlayerMark, targetEmpty, targetOwn int) int {
	return len(Classify(b, index, mark, targetEmpty, targetOwn))
}
