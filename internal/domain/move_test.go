package domain

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseMove(t *testing.T) {
	testCases := []struct {
		input   string
		want    Move
		wantErr error
	}{
		{input: "end", want: Move{End: true}},
		{input: "1", want: Move{Column: 0}},
		{input: "7", want: Move{Column: 6}},
		{input: " 4 ", want: Move{Column: 3}},
		{input: "\t5", want: Move{Column: 4}},
		{input: " end", wantErr: ErrParse},
		{input: "end ", wantErr: ErrParse},
		{input: "0", wantErr: ErrOutOfRange},
		{input: "8", wantErr: ErrOutOfRange},
		{input: "-2", wantErr: ErrOutOfRange},
		{input: "End", wantErr: ErrParse},
		{input: "END", wantErr: ErrParse},
		{input: "", wantErr: ErrParse},
		{input: "two", wantErr: ErrParse},
		{input: "3.5", wantErr: ErrParse},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMove(tc.input, 7)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}
