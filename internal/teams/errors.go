package teams

import "errors"

var ErrCreatorHasTeam = errors.New("user has already created a team")
var ErrTeamNameTaken = errors.New("team name already taken")
var ErrAlreadyMember = errors.New("user is already on a team")
