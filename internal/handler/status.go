package handler

import (
	"errors"
	"net/http"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/domain"
)

// statusFor maps the engine's error taxonomy onto HTTP statuses. The
// core itself never knows about HTTP; this is the only place where the
// mapping lives.
func statusFor(err error) int {
	switch {
	case domain.IsValidation(err) || domain.IsFeatureMismatch(err):
		return http.StatusBadRequest
	case domain.IsReferenceNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrEmptyDataset):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
