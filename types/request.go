package types

// RequestKind identifies what the player asked for.
type RequestKind uint8

const (
	Play RequestKind = iota + 1
	Pass
	Resign
	Undo
)

func (k RequestKind) String() string {
	switch k {
	case Play:
		return "play"
	case Pass:
		return "pass"
	case Resign:
		return "resign"
	case Undo:
		return "undo"
	}
	return "unknown"
}

// Request is a syntactically valid move request from an input source.
// Pos is only set for Play.
type Request struct {
	Kind RequestKind
	Pos  Pos
}

// PlayAt returns a Play request for the given row and column.
func PlayAt(row, col int) Request {
	return Request{Kind: Play, Pos: Pos{Row: row, Col: col}}
}
