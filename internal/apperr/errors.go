// Package apperr defines the business-rule error taxonomy shared by all
// workflow entry points. Errors are detected during validation and
// returned before any mutation; anything below the business-rule layer
// is wrapped as ErrInternal.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotOwner is returned when the requester does not own a team.
	ErrNotOwner = errors.New("requester is not a team creator")

	// ErrNotAuthorized is returned when the requester's team is not a
	// participant in the match.
	ErrNotAuthorized = errors.New("team is not a participant in this match")

	// ErrNotFound is returned when a referenced match, team or user is absent.
	ErrNotFound = errors.New("not found")

	// ErrSlotConflict is returned when the (date, time) slot is already booked.
	ErrSlotConflict = errors.New("match slot is already booked")

	// ErrDuplicateSubmission is returned when a team files a second result
	// for the same match.
	ErrDuplicateSubmission = errors.New("result already submitted for this match")

	// ErrPlayerNotOnTeam is returned when a result references a player who
	// is not on the reporting team's roster.
	ErrPlayerNotOnTeam = errors.New("player is not on the reporting team")

	// ErrInvalidToken is returned when a confirmation token is missing,
	// expired, or fails verification.
	ErrInvalidToken = errors.New("confirmation token is invalid or expired")

	// ErrInternal wraps failures below the business-rule layer.
	ErrInternal = errors.New("internal error")
)

// Status maps a business-rule error to an HTTP status code. Unknown
// errors map to 500; their detail stays in the server log, not the response.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSlotConflict), errors.Is(err, ErrDuplicateSubmission):
		return http.StatusConflict
	case errors.Is(err, ErrPlayerNotOnTeam):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsBusiness reports whether err belongs to the business-rule taxonomy.
// Errors raised inside an atomic unit are re-raised unchanged when they
// are business errors and wrapped as ErrInternal otherwise.
func IsBusiness(err error) bool {
	return Status(err) != http.StatusInternalServerError
}
