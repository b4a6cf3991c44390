package results

import "github.com/openpitch/league/internal/models"

// SubmitTeamResultRequest is one team's report of a played match. All
// player references are roster member ids of the reporting team.
type SubmitTeamResultRequest struct {
	Goals         []models.PlayerCount  `json:"goals"`
	CornerKicks   int                   `json:"corner_kicks"`
	YellowCards   []models.PlayerCount  `json:"yellow_cards"`
	RedCards      []models.PlayerCount  `json:"red_cards"`
	Substitutions []models.Substitution `json:"substitutions"`
	Saves         []models.PlayerCount  `json:"saves"`
	Assists       []models.PlayerCount  `json:"assists"`
	Passes        int                   `json:"passes"`
	CleanSheet    bool                  `json:"clean_sheet"`
	PenaltyKicks  int                   `json:"penalty_kicks"`
	FreeKicks     int                   `json:"free_kicks"`
}

// SubmitPlayerResultRequest is one member's per-match stat line.
type SubmitPlayerResultRequest struct {
	Goals         int  `json:"goals"`
	Assists       int  `json:"assists"`
	YellowCards   int  `json:"yellow_cards"`
	RedCards      int  `json:"red_cards"`
	Substitutions int  `json:"substitutions"`
	Saves         int  `json:"saves"`
	CleanSheet    bool `json:"clean_sheet"`
}
