package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerCount attributes a per-match count (goals, cards, saves,
// assists) to a single roster member.
type PlayerCount struct {
	MemberID uuid.UUID `json:"member_id"`
	Count    int       `json:"count"`
}

// Substitution records one player replacing another
type Substitution struct {
	InMemberID  uuid.UUID `json:"in_member_id"`
	OutMemberID uuid.UUID `json:"out_member_id"`
}

// MatchResult is one team's report of a played match. A team reports at
// most once per match, and the row is never updated after insert.
type MatchResult struct {
	ID            uuid.UUID      `json:"id"`
	MatchID       uuid.UUID      `json:"match_id"`
	TeamID        uuid.UUID      `json:"team_id"`
	Goals         []PlayerCount  `json:"goals"`
	CornerKicks   int            `json:"corner_kicks"`
	YellowCards   []PlayerCount  `json:"yellow_cards"`
	RedCards      []PlayerCount  `json:"red_cards"`
	Substitutions []Substitution `json:"substitutions"`
	Saves         []PlayerCount  `json:"saves"`
	Assists       []PlayerCount  `json:"assists"`
	Passes        int            `json:"passes"`
	CleanSheet    bool           `json:"clean_sheet"`
	PenaltyKicks  int            `json:"penalty_kicks"`
	FreeKicks     int            `json:"free_kicks"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Score sums the goal contributions in the report
func (r MatchResult) Score() int {
	total := 0
	for _, g := range r.Goals {
		total += g.Count
	}
	return total
}

// PlayerStats is one member's per-match stat line
type PlayerStats struct {
	ID            uuid.UUID `json:"id"`
	MatchID       uuid.UUID `json:"match_id"`
	MemberID      uuid.UUID `json:"member_id"`
	TeamID        uuid.UUID `json:"team_id"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	YellowCards   int       `json:"yellow_cards"`
	RedCards      int       `json:"red_cards"`
	Substitutions int       `json:"substitutions"`
	Saves         int       `json:"saves"`
	CleanSheet    bool      `json:"clean_sheet"`
	CreatedAt     time.Time `json:"created_at"`
}

// TeamStats holds a team's cumulative record. Counters only ever grow;
// both participants' rows are updated together when a match completes.
type TeamStats struct {
	TeamID     uuid.UUID `json:"team_id"`
	Wins       int       `json:"wins"`
	Loses      int       `json:"loses"`
	Draws      int       `json:"draws"`
	TotalGames int       `json:"total_games"`
	UpdatedAt  time.Time `json:"updated_at"`
}
