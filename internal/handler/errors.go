package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/drivebase/rental/internal/domain"
)

// errorResponse is the JSON error envelope returned by every endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serialises v with the given status. Encoding failures are
// swallowed: headers are already out, so there is nothing useful to send.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto an HTTP status and error code.
//
//	ErrInvalidArgument  422 validation_error (bad input)
//	ErrNotFound         404 not_found
//	ErrConflict         409 conflict (range unavailable, duplicate plate)
//	ErrInvalidOperation 409 invalid_state (illegal lifecycle transition)
//	anything else       500 internal (details stay out of the response)
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: trimLayerPrefixes(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: trimLayerPrefixes(err)},
		})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "conflict", Message: trimLayerPrefixes(err)},
		})
	case errors.Is(err, domain.ErrInvalidOperation):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "invalid_state", Message: trimLayerPrefixes(err)},
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal", Message: "internal server error"},
		})
	}
}

// requestError rejects a request before it reaches the service layer
// (e.g. missing or malformed body, bad UUID in the path).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// trimLayerPrefixes extracts the human-readable tail from a wrapped error.
// e.g. "service.BookingService.Create: invalid argument: start after end"
// becomes "invalid argument: start after end". Only the mechanical
// "<layer>.<Type>.<Method>: " prefixes are stripped.
func trimLayerPrefixes(err error) string {
	msg := err.Error()
	for {
		head, tail, ok := strings.Cut(msg, ": ")
		if !ok {
			return msg
		}
		if !strings.HasPrefix(head, "service.") && !strings.HasPrefix(head, "repo.") {
			return msg
		}
		msg = tail
	}
}
