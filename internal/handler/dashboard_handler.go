package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sales-dashboard-api/internal/dashboard"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/service"
)

// DashboardHandler exposes the aggregation engine. Both endpoints take
// optional year and month query parameters defaulting to the current UTC month.
type DashboardHandler struct {
	responder
	dashboardService service.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder:        newResponder(logger),
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// Dashboard handles GET /api/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	branches, err := h.dashboardService.Dashboard(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.BranchPerformance, len(branches))
	for i := range branches {
		resp[i] = toBranchPerformance(&branches[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// History handles GET /api/dashboard/history
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	period, ok := h.period(w, r)
	if !ok {
		return
	}

	summaries, err := h.dashboardService.History(r.Context(), period)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]dto.PeriodSummary, len(summaries))
	for i, s := range summaries {
		resp[i] = dto.PeriodSummary{
			Year:          s.Period.Year,
			Month:         s.Period.Month,
			Sales:         toChannelSales(s.Sales),
			TotalSales:    s.TotalSales.InexactFloat64(),
			TotalTarget:   s.TotalTarget.InexactFloat64(),
			TotalExpenses: s.TotalExpenses.InexactFloat64(),
			NetProfit:     s.NetProfit.InexactFloat64(),
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DashboardHandler) period(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("year"), q.Get("month"), h.now().UTC())
	if err != nil {
		h.handleServiceError(w, r, err)
		return domain.Period{}, false
	}
	return period, true
}

func toBranchPerformance(b *dashboard.BranchPerformance) dto.BranchPerformance {
	employees := make([]dto.EmployeePerformance, len(b.Employees))
	for i, e := range b.Employees {
		employees[i] = dto.EmployeePerformance{
			ID:          e.Employee.ID,
			BranchID:    e.Employee.BranchID,
			Name:        e.Employee.Name,
			Performance: toPerformance(e.Performance),
		}
	}

	return dto.BranchPerformance{
		ID:          b.Branch.ID,
		Name:        b.Branch.Name,
		Color:       b.Branch.Color,
		Performance: toPerformance(b.Performance),
		Employees:   employees,
	}
}

func toPerformance(p dashboard.Performance) dto.Performance {
	return dto.Performance{
		Targets: dto.ChannelTargets{
			Facebook: p.Targets.Facebook.InexactFloat64(),
			Shopee:   p.Targets.Shopee.InexactFloat64(),
			Lazada:   p.Targets.Lazada.InexactFloat64(),
			Total:    p.TotalTarget.InexactFloat64(),
		},
		Sales:      toChannelSales(p.Sales),
		TotalSales: p.TotalSales.InexactFloat64(),
		Expenses: dto.ExpenseBreakdown{
			Cost: p.Expenses.Cost.InexactFloat64(),
			Ads:  p.Expenses.Ads.InexactFloat64(),
			Fees: p.Expenses.Fees.InexactFloat64(),
		},
		TotalExpenses:  p.TotalExpenses.InexactFloat64(),
		NetProfit:      p.NetProfit.InexactFloat64(),
		PerformancePct: p.PerformancePct,
		DiffFromTarget: p.DiffFromTarget.InexactFloat64(),
		CostPct:        p.CostPct,
		AdsPct:         p.AdsPct,
		FeesPct:        p.FeesPct,
		TotalExpPct:    p.TotalExpPct,
	}
}

func toChannelSales(c dashboard.ChannelAmounts) dto.ChannelSales {
	return dto.ChannelSales{
		Facebook: c.Facebook.InexactFloat64(),
		Shopee:   c.Shopee.InexactFloat64(),
		Lazada:   c.Lazada.InexactFloat64(),
	}
}
