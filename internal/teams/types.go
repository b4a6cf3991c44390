package teams

import "github.com/openpitch/league/internal/models"

// CreateTeamRequest carries the fields needed to found a new team
type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateTeamRequest supports partial updates of team details
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TeamDetail is a team together with its roster
type TeamDetail struct {
	models.Team
	Members []models.Member `json:"members"`
}
