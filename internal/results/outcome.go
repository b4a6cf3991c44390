package results

// outcomeDelta is the increment applied to one team's cumulative record
// when a match completes.
type outcomeDelta struct {
	Wins       int32
	Loses      int32
	Draws      int32
	TotalGames int32
}

// computeOutcome derives both sides' record increments from the final
// score. The deltas are symmetric: one win implies one loss, a draw
// counts for both, and each side always gains exactly one game.
func computeOutcome(homeScore, awayScore int) (home, away outcomeDelta) {
	home.TotalGames = 1
	away.TotalGames = 1

	switch {
	case homeScore > awayScore:
		home.Wins = 1
		away.Loses = 1
	case homeScore < awayScore:
		away.Wins = 1
		home.Loses = 1
	default:
		home.Draws = 1
		away.Draws = 1
	}
	return home, away
}
