package domain

import (
	"strconv"
	"strings"
)

// Render draws the board the way the console shows it: numbered column
// headers, the top row first, and a closed bottom border.
func Render(b *Board) string {
	var sb strings.Builder

	for c := 1; c <= b.columns; c++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')

	for r := b.rows - 1; r >= 0; r-- {
		sb.WriteString("║")
		for c := 0; c < b.columns; c++ {
			sb.WriteRune(rune(b.cells[c][r]))
			sb.WriteString("║")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("╚")
	sb.WriteString(strings.Repeat("═╩", b.columns-1))
	sb.WriteString("═╝\n")

	return sb.String()
}
