// Package board implements the geometry, game state, rules engine and
// playout policy for the ice-floe penguin game: a two-player abstract
// strategy game played on a 60-cell hexagonal board.
package board

import "github.com/pkg/errors"

// NumCells is the number of hex cells on the board.
const NumCells = 60

// NumRows is the number of rows the board is laid out in. Even rows
// (0, 2, 4, 6) hold 7 cells; odd rows (1, 3, 5, 7) hold 8 cells.
const NumRows = 8

// Cell is a board position in [0, NumCells).
type Cell int8

// rowLen returns the number of cells in row r.
func rowLen(r int) int {
	if r%2 == 0 {
		return 7
	}
	return 8
}

// rowStart is the index of the first cell in row r.
var rowStart [NumRows + 1]int

func init() {
	total := 0
	for r := 0; r < NumRows; r++ {
		rowStart[r] = total
		total += rowLen(r)
	}
	rowStart[NumRows] = total
	if total != NumCells {
		panic("board: row geometry does not sum to NumCells")
	}
}

// RowCol returns the (row, column) of a cell.
func RowCol(c Cell) (row, col int) {
	ci := int(c)
	for r := 0; r < NumRows; r++ {
		if ci < rowStart[r+1] {
			return r, ci - rowStart[r]
		}
	}
	panic("board: cell out of range")
}

// CellAt returns the cell at (row, col), or -1 if out of bounds.
func CellAt(row, col int) Cell {
	if row < 0 || row >= NumRows {
		return -1
	}
	if col < 0 || col >= rowLen(row) {
		return -1
	}
	return Cell(rowStart[row] + col)
}

// Valid reports whether c is a valid cell index.
func (c Cell) Valid() bool {
	return c >= 0 && int(c) < NumCells
}

// ErrOutOfRange is returned when a cell or player index is out of bounds.
var ErrOutOfRange = errors.New("board: index out of range")

// CheckCell validates a cell index, wrapping ErrOutOfRange with context.
func CheckCell(c Cell) error {
	if !c.Valid() {
		return errors.Wrapf(ErrOutOfRange, "cell %d out of range [0,%d)", c, NumCells)
	}
	return nil
}

// Player identifies one of the two players.
type Player int8

const (
	Player0 Player = 0
	Player1 Player = 1
	// NumPlayers is the number of players this engine supports at the
	// rules layer. The data model permits up to four (see GLOSSARY /
	// data model notes); the AI's win condition is two-player only.
	NumPlayers = 2
)

// CheckPlayer validates a player index.
func CheckPlayer(p Player) error {
	if p < 0 || int(p) >= NumPlayers {
		return errors.Wrapf(ErrOutOfRange, "player %d out of range [0,%d)", p, NumPlayers)
	}
	return nil
}

// Other returns the opponent of p (valid only for the 2-player model).
func (p Player) Other() Player {
	return 1 - p
}
