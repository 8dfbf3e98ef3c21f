package handler

import (
	"log/slog"
	"net/http"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/middleware"
	"github.com/sales-dashboard-api/internal/service"
)

type AuthHandler struct {
	responder
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		responder:   newResponder(logger),
		authService: authService,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "access token required", "")
		return
	}

	user, err := h.authService.Me(r.Context(), claims.UserID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
	}
}
