package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/repository"
	"github.com/sales-dashboard-api/internal/service"
)

// EntryHandler serves the monthly sales, expense and target figures
type EntryHandler struct {
	responder
	entryService service.EntryService
	now          func() time.Time
}

func NewEntryHandler(entryService service.EntryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		responder:    newResponder(logger),
		entryService: entryService,
		now:          time.Now,
	}
}

func (h *EntryHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	sales, err := h.entryService.ListSales(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		resp[i] = toSaleResponse(&sales[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// RecordSale handles POST /api/sales. Posting the same employee, channel
// and month again replaces the amount.
func (h *EntryHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleRequest
	if !h.decode(w, r, &req) {
		return
	}

	sale, err := h.entryService.RecordSale(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSaleResponse(sale))
}

func (h *EntryHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	expenses, err := h.entryService.ListExpenses(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = toExpenseResponse(&expenses[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EntryHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequest
	if !h.decode(w, r, &req) {
		return
	}

	expense, err := h.entryService.RecordExpense(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toExpenseResponse(expense))
}

// GetTarget handles GET /api/targets?employee_id&year&month
func (h *EntryHandler) GetTarget(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryInt64(r, "employee_id")
	if err != nil || employeeID == nil {
		h.respondError(w, http.StatusBadRequest, "employee_id is required", "")
		return
	}

	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("year"), q.Get("month"), h.now().UTC())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	spec, err := h.entryService.GetTarget(r.Context(), *employeeID, period)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTargetResponse(*employeeID, period, spec))
}

func (h *EntryHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	var req dto.TargetRequest
	if !h.decode(w, r, &req) {
		return
	}

	spec, err := h.entryService.SetTarget(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTargetResponse(req.EmployeeID, domain.Period{Year: req.Year, Month: req.Month}, spec))
}

// parseEntryFilter reads the optional employee_id, year and month filters.
// Present values must be well formed.
func parseEntryFilter(r *http.Request) (repository.EntryFilter, error) {
	var filter repository.EntryFilter

	employeeID, err := queryInt64(r, "employee_id")
	if err != nil {
		return filter, err
	}
	filter.EmployeeID = employeeID

	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			return filter, fmt.Errorf("year %q is not a valid year", raw)
		}
		filter.Year = &year
	}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return filter, fmt.Errorf("month %q must be 1-12", raw)
		}
		filter.Month = &month
	}

	return filter, nil
}

func toSaleResponse(sale *domain.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         sale.ID,
		EmployeeID: sale.EmployeeID,
		Channel:    string(sale.Channel),
		Amount:     sale.Amount.InexactFloat64(),
		Year:       sale.Year,
		Month:      sale.Month,
		UpdatedAt:  sale.UpdatedAt,
	}
}

func toExpenseResponse(expense *domain.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:         expense.ID,
		EmployeeID: expense.EmployeeID,
		Type:       string(expense.Type),
		Amount:     expense.Amount.InexactFloat64(),
		Year:       expense.Year,
		Month:      expense.Month,
		UpdatedAt:  expense.UpdatedAt,
	}
}

func toTargetResponse(employeeID int64, p domain.Period, spec domain.TargetSpec) dto.TargetResponse {
	return dto.TargetResponse{
		EmployeeID: employeeID,
		Year:       p.Year,
		Month:      p.Month,
		Facebook:   spec.Facebook.InexactFloat64(),
		Shopee:     spec.Shopee.InexactFloat64(),
		Lazada:     spec.Lazada.InexactFloat64(),
		Total:      spec.Facebook.Add(spec.Shopee).Add(spec.Lazada).InexactFloat64(),
	}
}
