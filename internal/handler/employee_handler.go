package handler

import (
	"log/slog"
	"net/http"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/service"
)

type EmployeeHandler struct {
	responder
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		responder:  newResponder(logger),
		empService: empService,
	}
}

// List handles GET /api/employees?branch=<id>
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	branchID, err := queryInt64(r, "branch")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid branch id", err.Error())
		return
	}

	employees, err := h.empService.List(r.Context(), branchID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", err.Error())
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:             emp.ID,
		BranchID:       emp.BranchID,
		Name:           emp.Name,
		TargetFacebook: emp.TargetFacebook.InexactFloat64(),
		TargetShopee:   emp.TargetShopee.InexactFloat64(),
		TargetLazada:   emp.TargetLazada.InexactFloat64(),
		CreatedAt:      emp.CreatedAt,
	}
	if emp.Branch != nil {
		resp.BranchName = emp.Branch.Name
	}
	return resp
}
