package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EndCommand aborts the current game. It is matched case-sensitively.
const EndCommand = "end"

// Move is either the end command or a 0-based column.
type Move struct {
	End    bool
	Column int
}

// ParseMove turns a raw input line into a Move. Columns are typed 1-based.
// Whitespace around a column number is ignored, while EndCommand must match
// the whole line exactly.
func ParseMove(input string, columns int) (Move, error) {
	if input == EndCommand {
		return Move{End: true}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Move{}, errors.Wrapf(ErrParse, "%q", input)
	}
	if n < 1 || n > columns {
		return Move{}, errors.Wrapf(ErrOutOfRange, "column %d not in 1..%d", n, columns)
	}

	return Move{Column: n - 1}, nil
}
