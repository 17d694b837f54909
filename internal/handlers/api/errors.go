package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gabapcia/recoverywallet/internal/pkg/logger"
	"github.com/gabapcia/recoverywallet/internal/recovery"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps a wallet rejection code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case "unauthorized":
		return http.StatusForbidden
	case "not_found":
		return http.StatusNotFound
	case "duplicate_confirmation", "already_applied", "already_executed", "state_conflict":
		return http.StatusConflict
	case "cannot_execute", "balance_overflow":
		return http.StatusUnprocessableEntity
	case "call_failed":
		return http.StatusBadGateway
	case "invalid_config", "config_mismatch":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders an error returned by the wallet service.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code := recovery.Reason(err)
	status := statusFor(code)

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "wallet operation failed", "error", err)
		err = errors.New("internal error")
	}

	writeError(w, r, status, code, err)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	writeJSON(w, r, status, errorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(r.Context(), "failed to write response", "error", err)
	}
}
