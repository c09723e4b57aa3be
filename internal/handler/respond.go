package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jayadityadev/social-media-api/internal/middleware"
	"github.com/jayadityadev/social-media-api/internal/models"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

var errorStatus = []struct {
	err    error
	status int
}{
	{models.ErrValidation, http.StatusUnprocessableEntity},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrForbidden, http.StatusForbidden},
	{models.ErrConflict, http.StatusConflict},
	{models.ErrUnauthorized, http.StatusUnauthorized},
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		middleware.Logger(r.Context()).Errorf("Failed to write response: %v", err)
	}
}

// writeError maps err onto a status code and a {"detail": ...} body.
// Errors outside the models taxonomy are logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			if e.status == http.StatusUnauthorized {
				w.Header().Set("WWW-Authenticate", "Bearer")
			}
			writeJSON(w, r, e.status, errorResponse{Detail: detail(err, e.err)})
			return
		}
	}
	middleware.Logger(r.Context()).Errorf("Request failed: %v", err)
	writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
}

// detail strips the sentinel prefix added by fmt.Errorf("%w: ...")
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{models.ErrValidation}, args...)...)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validationf("invalid request body: %v", err)
	}
	return nil
}

func notFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Detail: "Not Found"})
	})
}

func methodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
	})
}
