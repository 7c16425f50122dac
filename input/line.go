// Package input reads move requests typed by the players.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"reversi-term/types"
)

// LineSource reads requests one line at a time. A player either types a whole
// request ("d3", "pass", "resign") at the first prompt, or a column (number
// or letter) followed by a row number. Typing undo at the row prompt drops the column.
// Malformed lines are answered with a hint and asked again.
type LineSource struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineSource creates a source reading from r and prompting on w.
func NewLineSource(r io.Reader, w io.Writer) *LineSource {
	return &LineSource{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Next blocks until a valid request is read. It returns io.EOF when the input
// ends and any other read error as is.
func (s *LineSource) Next() (types.Request, error) {
	for {
		line, err := s.ask("Which column? ")
		if err != nil {
			return types.Request{}, err
		}
		if line == "" {
			continue
		}
		if req, err := ParseRequest(line); err == nil {
			return req, nil
		}
		col, err := parseColumn(line)
		if err != nil {
			fmt.Fprintf(s.out, "%s. Enter 1-%d, a move like d3, pass or resign.\n", capitalize(err.Error()), types.BoardSize)
			continue
		}

		for {
			line, err := s.ask("Which row? ")
			if err != nil {
				return types.Request{}, err
			}
			if k := strings.ToLower(line); k == "u" || k == "undo" {
				return types.Request{Kind: types.Undo}, nil
			}
			row, err := parseIndex(line)
			if err != nil {
				fmt.Fprintf(s.out, "%s. Enter 1-%d, or undo to pick another column.\n", capitalize(err.Error()), types.BoardSize)
				continue
			}
			return types.PlayAt(row, col), nil
		}
	}
}

func (s *LineSource) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
