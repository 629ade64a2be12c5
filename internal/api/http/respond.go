package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"communityhub-backend/internal/domain"
	"communityhub-backend/internal/logger"
	"communityhub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain sentinel errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrRequestClosed),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDeleteBlocked):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrPolicyMisconfigured):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMemberCreationFailed):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
