package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Console reads whole lines from the players and writes the game transcript.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	err    error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{reader: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its terminator, or io.EOF once the
// input is exhausted. Lines have no length limit.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", io.EOF
	case err != nil && err != io.EOF:
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(a ...any) {
	c.write(fmt.Fprintln(c.out, a...))
}

func (c *Console) Printf(format string, a ...any) {
	c.write(fmt.Fprintf(c.out, format, a...))
}

// Print writes already formatted text such as a rendered board.
func (c *Console) Print(s string) {
	c.write(io.WriteString(c.out, s))
}

// Err reports the first write failure.
func (c *Console) Err() error {
	return c.err
}

func (c *Console) write(_ int, err error) {
	if err != nil && c.err == nil {
		c.err = errors.Wrap(err, "write output")
	}
}
