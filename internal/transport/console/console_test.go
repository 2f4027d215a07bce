package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("Alice\r\n\n5 x 6\nend"), io.Discard)

	for _, want := range []string{"Alice", "", "5 x 6", "end"} {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("error at end = %v, want io.EOF", err)
	}
}

func TestReadLineLongLine(t *testing.T) {
	long := strings.Repeat("9", 70000)
	c := New(strings.NewReader(long+"\r\nend\n"), io.Discard)

	for _, want := range []string{long, "end"} {
		got, err := c.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadLine() returned %d bytes, want %d", len(got), len(want))
		}
	}
	if _, err := c.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("error at end = %v, want io.EOF", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadLineError(t *testing.T) {
	c := New(failingReader{}, io.Discard)
	_, err := c.ReadLine()
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() error = %v, want a read failure", err)
	}
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Println("Connect Four")
	c.Printf("%s VS %s\n", "Alice", "Bob")
	c.Print(" 1 2\n")

	want := "Connect Four\nAlice VS Bob\n 1 2\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v", c.Err())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrorIsKept(t *testing.T) {
	c := New(strings.NewReader(""), failingWriter{})
	c.Println("hello")
	c.Println("again")
	if c.Err() == nil {
		t.Error("expected the write error to be reported")
	}
}
