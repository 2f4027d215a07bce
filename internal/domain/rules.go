package domain

// hasRun scans every start cell from which ToWin steps of (deltaCol, deltaRow)
// stay on the grid.
func hasRun(b *Board, sign Sign, deltaCol, deltaRow int) bool {
	if sign == Empty {
		return false
	}

	span := ToWin - 1
	minCol, maxCol := 0, b.columns-1-span*deltaCol
	minRow, maxRow := 0, b.rows-1
	switch {
	case deltaRow > 0:
		maxRow = b.rows - 1 - span*deltaRow
	case deltaRow < 0:
		minRow = span
	}

	for c := minCol; c <= maxCol; c++ {
		for r := minRow; r <= maxRow; r++ {
			count := 0
			for count < ToWin && b.cells[c+count*deltaCol][r+count*deltaRow] == sign {
				count++
			}
			if count == ToWin {
				return true
			}
		}
	}
	return false
}

// HasFourInRow looks for four along a row.
func HasFourInRow(b *Board, sign Sign) bool {
	return hasRun(b, sign, 1, 0)
}

// HasFourInColumn looks for four stacked in one column.
func HasFourInColumn(b *Board, sign Sign) bool {
	return hasRun(b, sign, 0, 1)
}

func HasFourDiagonalUp(b *Board, sign Sign) bool {
	return hasRun(b, sign, 1, 1)
}

func HasFourDiagonalDown(b *Board, sign Sign) bool {
	return hasRun(b, sign, 1, -1)
}

func HasWon(b *Board, sign Sign) bool {
	return HasFourInRow(b, sign) ||
		HasFourInColumn(b, sign) ||
		HasFourDiagonalUp(b, sign) ||
		HasFourDiagonalDown(b, sign)
}

// IsDraw is only true for a full board nobody has won on.
func IsDraw(b *Board) bool {
	if !b.IsFull() {
		return false
	}
	for _, sign := range b.Signs() {
		if HasWon(b, sign) {
			return false
		}
	}
	return true
}
