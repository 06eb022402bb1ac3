package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pmp-study-backend/internal/domain"
	"github.com/heartmarshall/pmp-study-backend/pkg/ctxutil"
)

// Error codes returned in the "code" field of error responses.
const (
	codeValidation    = "VALIDATION"
	codeInvalidRating = "INVALID_RATING"
	codeUnauthorized  = "UNAUTHORIZED"
	codeNotFound      = "NOT_FOUND"
	codeConflict      = "CONFLICT"
	codeInternal      = "INTERNAL"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps a service error onto an HTTP status. Anything unrecognised
// is logged and reported as a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, codeInvalidRating, "rating must be one of AGAIN, HARD, GOOD, EASY")
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed", Code: codeValidation}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeConflict, "already exists")
	default:
		attrs := append([]any{slog.String("error", err.Error())}, ctxutil.LogAttrs(r.Context())...)
		log.ErrorContext(r.Context(), "internal error", attrs...)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
