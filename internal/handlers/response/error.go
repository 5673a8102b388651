package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/classhub-2025.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteTypedError maps the core error taxonomy onto HTTP statuses.
// Anything unrecognized is an upstream failure and stays generic.
func WriteTypedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.InvalidSession):
		WriteError(w, ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized})
	case errors.Is(err, errs.InvalidState):
		WriteError(w, ErrorMessage{Message: err.Error(), StatusCode: http.StatusForbidden})
	case errors.Is(err, errs.NotFound):
		WriteError(w, ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
	default:
		WriteError(w, ErrorMessage{Message: "internal error", StatusCode: http.StatusInternalServerError})
	}
}
