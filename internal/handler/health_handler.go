package handler

import (
	"log/slog"
	"net/http"
)

// HealthHandler answers liveness probes
type HealthHandler struct {
	responder
}

func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{responder: newResponder(logger)}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Sales Dashboard API is running",
		"status":  "ok",
	})
}
