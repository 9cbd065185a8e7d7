package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/bank-service/src/internal/commons"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps service sentinel errors onto HTTP statuses; anything
// unrecognized is treated as a server fault.
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, commons.ErrAlreadyClosed),
		errors.Is(err, commons.ErrAlreadyDepositedToday),
		errors.Is(err, commons.ErrDuplicateRecord):
		return http.StatusConflict
	case errors.Is(err, commons.ErrInvalidAmount),
		errors.Is(err, commons.ErrDepositCapExceeded),
		errors.Is(err, commons.ErrInsufficientBalance),
		errors.Is(err, commons.ErrSavingsNotActive),
		errors.Is(err, commons.ErrNumberGenerationExhausted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorStatus[T any](response commons.Response[T], err error) int {
	if response.Message == "validation failed" {
		return http.StatusBadRequest
	}
	return statusForError(err)
}
