package handlers

import (
	"errors"
	"net/http"

	apperrors "takatrack/internal/errors"
)

// defaultUserID scopes requests that carry no explicit user header. The API
// is single-tenant by default but every record is keyed by user.
const defaultUserID = "default"

func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultUserID
}

// errorStatus maps domain errors onto HTTP statuses.
func errorStatus(err error) int {
	var (
		notFound    *apperrors.ErrNotFound
		validation  *apperrors.ErrValidation
		badAmount   *apperrors.ErrInvalidAmount
		missingRate *apperrors.ErrMissingExchangeRate
		alreadySold *apperrors.ErrAlreadySold
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &alreadySold):
		return http.StatusConflict
	case errors.As(err, &missingRate):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validation), errors.As(err, &badAmount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDivisionByZero):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), errorStatus(err))
}
