package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOutcomeHomeWin(t *testing.T) {
	home, away := computeOutcome(2, 1)

	assert.Equal(t, outcomeDelta{Wins: 1, TotalGames: 1}, home)
	assert.Equal(t, outcomeDelta{Loses: 1, TotalGames: 1}, away)
}

func TestComputeOutcomeAwayWin(t *testing.T) {
	home, away := computeOutcome(0, 3)

	assert.Equal(t, outcomeDelta{Loses: 1, TotalGames: 1}, home)
	assert.Equal(t, outcomeDelta{Wins: 1, TotalGames: 1}, away)
}

func TestComputeOutcomeDraw(t *testing.T) {
	home, away := computeOutcome(1, 1)

	assert.Equal(t, outcomeDelta{Draws: 1, TotalGames: 1}, home)
	assert.Equal(t, outcomeDelta{Draws: 1, TotalGames: 1}, away)
	assert.Equal(t, home, away, "a draw counts identically for both sides")
}

func TestComputeOutcomeSymmetry(t *testing.T) {
	for homeScore := 0; homeScore <= 4; homeScore++ {
		for awayScore := 0; awayScore <= 4; awayScore++ {
			home, away := computeOutcome(homeScore, awayScore)

			assert.Equal(t, home.Wins, away.Loses)
			assert.Equal(t, home.Loses, away.Wins)
			assert.Equal(t, home.Draws, away.Draws)
			assert.EqualValues(t, 1, home.TotalGames)
			assert.EqualValues(t, 1, away.TotalGames)
		}
	}
}
