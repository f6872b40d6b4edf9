package handler

import (
	"errors"
	"net/http"

	"clinic-appointment-backend/internal/repository"
	"clinic-appointment-backend/internal/service"
)

// statusFor maps repository and service errors onto HTTP status codes.
// Conflicts that resolve by changing the input (another slot, a quantity
// update, a different transition) are 409; unresolvable inputs are 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, repository.ErrStillReferenced),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrSupervisionCycle):
		return http.StatusConflict
	case errors.Is(err, repository.ErrRequired),
		errors.Is(err, repository.ErrDomain),
		errors.Is(err, repository.ErrForeignKey):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
