package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"reversi-term/types"
)

// Move notation:
// - Columns: a-h, left to right
// - Rows: 1-8, top to bottom
// - Example: d3 is row 3, column 4
//
// Keywords: pass (p), resign (r), undo (u).

var (
	ErrUnknownInput = errors.New("unrecognised input")
	ErrOutOfRange   = errors.New("position is out of range")
)

// ParseRequest parses a one-line request: a keyword or a move in notation.
func ParseRequest(s string) (types.Request, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "pass", "p":
		return types.Request{Kind: types.Pass}, nil
	case "resign", "r":
		return types.Request{Kind: types.Resign}, nil
	case "undo", "u":
		return types.Request{Kind: types.Undo}, nil
	}
	p, err := ParsePos(s)
	if err != nil {
		return types.Request{}, err
	}
	return types.Request{Kind: types.Play, Pos: p}, nil
}

// ParsePos converts notation such as "d3" to a position.
func ParsePos(s string) (types.Pos, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return types.Pos{}, fmt.Errorf("%w: %q", ErrUnknownInput, s)
	}

	col := int(s[0]-'a') + 1
	if s[0] < 'a' || s[0] > 'z' {
		return types.Pos{}, fmt.Errorf("%w: invalid column in %q", ErrUnknownInput, s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return types.Pos{}, fmt.Errorf("%w: invalid row in %q", ErrUnknownInput, s)
	}

	p := types.Pos{Row: row, Col: col}
	if !p.Valid() {
		return types.Pos{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return p, nil
}

// parseIndex parses a single row or column number between 1 and BoardSize.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownInput, s)
	}
	if n < 1 || n > types.BoardSize {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return n, nil
}

// parseColumn accepts a column number or a column letter a-h.
func parseColumn(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		col := int(s[0]-'a') + 1
		if col > types.BoardSize {
			return 0, fmt.Errorf("%w: column %q", ErrOutOfRange, s)
		}
		return col, nil
	}
	return parseIndex(s)
}
