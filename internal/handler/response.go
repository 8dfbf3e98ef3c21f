package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
)

// responder holds the request decoding and response helpers shared by all handlers
type responder struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{
		validator: validator.New(),
		logger:    logger,
	}
}

// decode reads a JSON body into dst and validates it. On failure the 400
// response has already been written and false is returned.
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}

	return true
}

func (h responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod):
		h.respondError(w, http.StatusBadRequest, "invalid period", err.Error())
	case errors.Is(err, domain.ErrInvalidChannel),
		errors.Is(err, domain.ErrInvalidExpenseType),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidRole):
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
	case errors.Is(err, domain.ErrBranchNotFound):
		h.respondError(w, http.StatusNotFound, "branch not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, "user not found", "")
	case errors.Is(err, domain.ErrDuplicateUsername):
		h.respondError(w, http.StatusConflict, "username already exists", "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.respondError(w, http.StatusUnauthorized, "invalid username or password", "")
	case errors.Is(err, domain.ErrRepositoryUnavailable):
		h.logger.Error("repository unavailable",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.respondError(w, http.StatusServiceUnavailable, "data store unavailable", "")
	default:
		h.logger.Error("internal error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

func extractID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("id %q is not a positive integer", raw)
	}
	return id, nil
}

// queryInt64 parses an optional positive integer query parameter.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return nil, fmt.Errorf("%s %q is not a positive integer", name, raw)
	}
	return &v, nil
}
