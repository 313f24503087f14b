package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/najamfazal/leadtrack-solo/internal/entity"
	"github.com/najamfazal/leadtrack-solo/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError translates domain failures into status codes so handlers
// stay thin.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrTaskNotFound),
		errors.Is(err, entity.ErrSettingsNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, entity.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case usecase.IsDomainError(err):
		var domainErr *usecase.DomainError
		errors.As(err, &domainErr)
		status := http.StatusBadRequest
		if strings.HasSuffix(domainErr.Code, "_NOT_FOUND") {
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Error: domainErr.Message, Code: domainErr.Code})

	case usecase.IsTechnicalError(err):
		var techErr *usecase.TechnicalError
		errors.As(err, &techErr)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: techErr.Message, Code: techErr.Code})

	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
