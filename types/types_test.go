package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, None, None.Opponent())
	assert.Equal(t, BlackDisc, DiscOf(Black))
	assert.Equal(t, WhiteDisc, DiscOf(White))
	assert.Equal(t, Black, BlackDisc.Color())
	assert.Equal(t, None, Candidate.Color())
	assert.True(t, Candidate.IsEmpty())
	assert.True(t, Blocked.IsEmpty())
	assert.False(t, WhiteDisc.IsEmpty())
}

func TestTurnState(t *testing.T) {
	assert.Equal(t, BlackToMove, ToMove(Black))
	assert.Equal(t, WhiteToMove, ToMove(White))
	assert.Equal(t, White, WhiteToMove.Mover())
	assert.Equal(t, None, GameOver.Mover())
	assert.True(t, GameOver.Over())
	assert.False(t, BlackToMove.Over())
}

func TestPos(t *testing.T) {
	assert.Equal(t, "d3", Pos{Row: 3, Col: 4}.String())
	assert.Equal(t, "h8", Pos{Row: 8, Col: 8}.String())
	assert.Equal(t, "--", Pos{}.String())
	assert.False(t, Pos{Row: 9, Col: 1}.Valid())
}

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		name string
		out  Outcome
		want string
	}{
		{"placed", Outcome{Kind: Placed, Mover: Black, Pos: Pos{Row: 3, Col: 4}, Flipped: 2}, "Black played d3, flipping 2"},
		{"passed", Outcome{Kind: Passed, Mover: White}, "White passed"},
		{"skipped", Outcome{Kind: Skipped, Mover: Black}, "White has no legal move, Black plays again"},
		{"resigned", Outcome{Kind: Resigned, Mover: Black, Winner: White}, "Black resigned, White wins"},
		{"dominated", Outcome{Kind: Dominated, Mover: White, Winner: White}, "White wins by domination"},
		{"win on count", Outcome{Kind: Ended, Winner: Black, Black: 40, White: 24}, "Black wins by 16 points (40 to 24)"},
		{"tie", Outcome{Kind: Ended, Winner: None, Black: 32, White: 32}, "Tie game, 32 to 32"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.out.Message())
		})
	}

	assert.True(t, Outcome{Kind: Ended}.Terminal())
	assert.False(t, Outcome{Kind: Skipped}.Terminal())
}
