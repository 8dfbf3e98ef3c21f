package handler

import (
	"log/slog"
	"net/http"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/service"
)

type BranchHandler struct {
	responder
	branchService service.BranchService
}

func NewBranchHandler(branchService service.BranchService, logger *slog.Logger) *BranchHandler {
	return &BranchHandler{
		responder:     newResponder(logger),
		branchService: branchService,
	}
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.BranchResponse, len(branches))
	for i := range branches {
		resp[i] = toBranchResponse(&branches[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBranchRequest
	if !h.decode(w, r, &req) {
		return
	}

	branch, err := h.branchService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toBranchResponse(branch))
}

func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid branch id", err.Error())
		return
	}

	var req dto.UpdateBranchRequest
	if !h.decode(w, r, &req) {
		return
	}

	branch, err := h.branchService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toBranchResponse(branch))
}

func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid branch id", err.Error())
		return
	}

	if err := h.branchService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBranchResponse(branch *domain.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:        branch.ID,
		Name:      branch.Name,
		Color:     branch.Color,
		CreatedAt: branch.CreatedAt,
	}
}
