package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"reversi-term/types"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		in   string
		want types.Request
	}{
		{"pass", types.Request{Kind: types.Pass}},
		{"P", types.Request{Kind: types.Pass}},
		{" resign ", types.Request{Kind: types.Resign}},
		{"r", types.Request{Kind: types.Resign}},
		{"undo", types.Request{Kind: types.Undo}},
		{"d3", types.PlayAt(3, 4)},
		{"A1", types.PlayAt(1, 1)},
		{"h8", types.PlayAt(8, 8)},
	}
	for _, tt := range tests {
		got, err := ParseRequest(tt.in)
		if err != nil {
			t.Errorf("ParseRequest(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRequest(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRequestErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrUnknownInput},
		{"x", ErrUnknownInput},
		{"c", ErrUnknownInput},
		{"hello", ErrUnknownInput},
		{"4d", ErrUnknownInput},
		{"i1", ErrOutOfRange},
		{"a9", ErrOutOfRange},
		{"a0", ErrOutOfRange},
	}
	for _, tt := range tests {
		_, err := ParseRequest(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseRequest(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestPosRoundTrip(t *testing.T) {
	for row := 1; row <= types.BoardSize; row++ {
		for col := 1; col <= types.BoardSize; col++ {
			p := types.Pos{Row: row, Col: col}
			got, err := ParsePos(p.String())
			if err != nil {
				t.Fatalf("ParsePos(%q): %v", p.String(), err)
			}
			if got != p {
				t.Errorf("ParsePos(%q) = %+v, want %+v", p.String(), got, p)
			}
		}
	}
}

func readAll(t *testing.T, input string) ([]types.Request, string, error) {
	t.Helper()
	var out strings.Builder
	src := NewLineSource(strings.NewReader(input), &out)
	var reqs []types.Request
	for {
		req, err := src.Next()
		if err != nil {
			return reqs, out.String(), err
		}
		reqs = append(reqs, req)
	}
}

func TestLineSource(t *testing.T) {
	input := strings.Join([]string{
		"4",    // column
		"3",    // row
		"",     // blank line is ignored
		"zz",   // junk
		"9",    // out of range column
		"2",    // column
		"nine", // junk row
		"u",    // undo at row prompt
		"f5",
		"c",
		"7",
		"pass",
		"resign",
	}, "\n")

	reqs, out, err := readAll(t, input)
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}

	want := []types.Request{
		types.PlayAt(3, 4),
		{Kind: types.Undo},
		types.PlayAt(5, 6),
		types.PlayAt(7, 3),
		{Kind: types.Pass},
		{Kind: types.Resign},
	}
	if len(reqs) != len(want) {
		t.Fatalf("got %d requests %+v, want %d", len(reqs), reqs, len(want))
	}
	for i := range want {
		if reqs[i] != want[i] {
			t.Errorf("request %d = %+v, want %+v", i, reqs[i], want[i])
		}
	}

	if n := strings.Count(out, "Which row? "); n != 4 {
		t.Errorf("row prompts = %d, want 4", n)
	}
	if !strings.Contains(out, "Unrecognised input") {
		t.Errorf("expected a hint for junk input, got %q", out)
	}
	if !strings.Contains(out, "Position is out of range") {
		t.Errorf("expected an out of range hint, got %q", out)
	}
}

func TestLineSourceEOFMidMove(t *testing.T) {
	reqs, _, err := readAll(t, "3\n")
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if len(reqs) != 0 {
		t.Errorf("got %+v, want no requests", reqs)
	}
}
