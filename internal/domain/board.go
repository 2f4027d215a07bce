package domain

import "github.com/pkg/errors"

// Board is addressed column first, row second. Row 0 is the bottom row.
type Board struct {
	cells   [][]Sign
	columns int
	rows    int
}

func NewBoard(columns, rows int) (*Board, error) {
	if !ValidDimension(columns) || !ValidDimension(rows) {
		return nil, errors.Wrapf(ErrConfig, "board %d columns x %d rows must be within %d..%d",
			columns, rows, MinDimension, MaxDimension)
	}

	cells := make([][]Sign, columns)
	for c := range cells {
		cells[c] = make([]Sign, rows)
		for r := range cells[c] {
			cells[c][r] = Empty
		}
	}

	return &Board{cells: cells, columns: columns, rows: rows}, nil
}

func ValidDimension(n int) bool {
	return n >= MinDimension && n <= MaxDimension
}

func (b *Board) Columns() int { return b.columns }

func (b *Board) Rows() int { return b.rows }

// Cell returns Empty for coordinates outside the grid.
func (b *Board) Cell(column, row int) Sign {
	if column < 0 || column >= b.columns || row < 0 || row >= b.rows {
		return Empty
	}
	return b.cells[column][row]
}

// Height is the number of tokens stacked in the column.
func (b *Board) Height(column int) int {
	for row := 0; row < b.rows; row++ {
		if b.cells[column][row] == Empty {
			return row
		}
	}
	return b.rows
}

func (b *Board) IsColumnFull(column int) bool {
	return b.cells[column][b.rows-1] != Empty
}

// Drop lets the sign fall to the lowest empty cell of the column and
// returns the row it landed on.
func (b *Board) Drop(column int, sign Sign) (int, error) {
	if sign == Empty {
		return -1, ErrInvalidSign
	}
	if column < 0 || column >= b.columns {
		return -1, errors.Wrapf(ErrOutOfRange, "column %d not in 0..%d", column, b.columns-1)
	}

	row := b.Height(column)
	if row == b.rows {
		return -1, errors.Wrapf(ErrColumnFull, "column %d", column)
	}

	b.cells[column][row] = sign
	return row, nil
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.columns; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// Signs lists the distinct signs on the board in column-major scan order.
func (b *Board) Signs() []Sign {
	seen := make(map[Sign]bool)
	var signs []Sign
	for _, column := range b.cells {
		for _, cell := range column {
			if cell == Empty || seen[cell] {
				continue
			}
			seen[cell] = true
			signs = append(signs, cell)
		}
	}
	return signs
}
