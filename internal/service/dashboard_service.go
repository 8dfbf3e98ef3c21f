package service

import (
	"context"
	"fmt"

	"github.com/sales-dashboard-api/internal/dashboard"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// historyConcurrency bounds the months of a history query fetched at once.
const historyConcurrency = 4

// DashboardService is the read-only entry point of the aggregation engine.
// Both methods are safe to call concurrently and return either a complete
// result or an error, never a partial result.
type DashboardService interface {
	// Dashboard returns every branch in creation order with its employees'
	// performance for p.
	Dashboard(ctx context.Context, p domain.Period) ([]dashboard.BranchPerformance, error)
	// History returns the company-wide summaries of the twelve months
	// ending at p, oldest first.
	History(ctx context.Context, p domain.Period) ([]dashboard.PeriodSummary, error)
}

type dashboardService struct {
	branchRepo  repository.BranchRepository
	empRepo     repository.EmployeeRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	targetRepo  repository.TargetRepository
}

// NewDashboardService creates the dashboard service
func NewDashboardService(
	branchRepo repository.BranchRepository,
	empRepo repository.EmployeeRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	targetRepo repository.TargetRepository,
) DashboardService {
	return &dashboardService{
		branchRepo:  branchRepo,
		empRepo:     empRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		targetRepo:  targetRepo,
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, p domain.Period) ([]dashboard.BranchPerformance, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	result := make([]dashboard.BranchPerformance, 0, len(branches))
	for _, branch := range branches {
		employees, err := s.empRepo.List(ctx, &branch.ID)
		if err != nil {
			return nil, unavailable(err)
		}

		records := make([]dashboard.EmployeePerformance, 0, len(employees))
		for _, emp := range employees {
			in, err := s.employeeInput(ctx, emp, p)
			if err != nil {
				return nil, unavailable(err)
			}
			records = append(records, dashboard.AggregateEmployee(in))
		}

		result = append(result, dashboard.AggregateBranch(branch, records))
	}

	return result, nil
}

func (s *dashboardService) employeeInput(ctx context.Context, emp domain.Employee, p domain.Period) (dashboard.EmployeeInput, error) {
	target, err := s.targetRepo.Get(ctx, emp.ID, p)
	if err != nil {
		return dashboard.EmployeeInput{}, fmt.Errorf("target of employee %d: %w", emp.ID, err)
	}

	sales, err := s.saleRepo.SumByChannel(ctx, emp.ID, p)
	if err != nil {
		return dashboard.EmployeeInput{}, fmt.Errorf("sales of employee %d: %w", emp.ID, err)
	}

	expenses, err := s.expenseRepo.SumByType(ctx, emp.ID, p)
	if err != nil {
		return dashboard.EmployeeInput{}, fmt.Errorf("expenses of employee %d: %w", emp.ID, err)
	}

	emp.Branch = nil
	return dashboard.EmployeeInput{
		Employee: emp,
		Target:   target,
		Sales:    sales,
		Expenses: expenses,
	}, nil
}

func (s *dashboardService) History(ctx context.Context, p domain.Period) ([]dashboard.PeriodSummary, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	periods := dashboard.TrailingPeriods(p, dashboard.HistoryWindow)
	summaries := make([]dashboard.PeriodSummary, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(historyConcurrency)

	for i, period := range periods {
		i, period := i, period
		g.Go(func() error {
			summary, err := s.summarize(gctx, period)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, unavailable(err)
	}

	return summaries, nil
}

func (s *dashboardService) summarize(ctx context.Context, p domain.Period) (dashboard.PeriodSummary, error) {
	sales, err := s.saleRepo.SumAllByChannel(ctx, p)
	if err != nil {
		return dashboard.PeriodSummary{}, fmt.Errorf("sales of %s: %w", p, err)
	}

	totalTarget, err := s.targetRepo.SumAll(ctx, p)
	if err != nil {
		return dashboard.PeriodSummary{}, fmt.Errorf("targets of %s: %w", p, err)
	}

	totalExpenses, err := s.expenseRepo.SumAll(ctx, p)
	if err != nil {
		return dashboard.PeriodSummary{}, fmt.Errorf("expenses of %s: %w", p, err)
	}

	return dashboard.SummarizePeriod(p, sales, totalTarget, totalExpenses), nil
}

// unavailable marks a repository failure reaching an aggregation entry point.
// The cause stays in the message for logging.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrRepositoryUnavailable, err)
}
