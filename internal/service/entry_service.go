package service

import (
	"context"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/repository"
	"github.com/shopspring/decimal"
)

// EntryService records the monthly figures the dashboard aggregates:
// sales per channel, expenses per type and targets.
type EntryService interface {
	// RecordSale sets the amount for (employee, channel, year, month).
	// Submitting the same key again replaces the amount.
	RecordSale(ctx context.Context, req *dto.SaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context, filter repository.EntryFilter) ([]domain.Sale, error)
	// RecordExpense sets the amount for (employee, type, year, month).
	RecordExpense(ctx context.Context, req *dto.ExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter repository.EntryFilter) ([]domain.Expense, error)
	// SetTarget sets the employee's target for a month.
	SetTarget(ctx context.Context, req *dto.TargetRequest) (domain.TargetSpec, error)
	// GetTarget returns the employee's target for p; all zero when none is set.
	GetTarget(ctx context.Context, employeeID int64, p domain.Period) (domain.TargetSpec, error)
}

type entryService struct {
	empRepo     repository.EmployeeRepository
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	targetRepo  repository.TargetRepository
}

// NewEntryService creates an entry service
func NewEntryService(
	empRepo repository.EmployeeRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	targetRepo repository.TargetRepository,
) EntryService {
	return &entryService{
		empRepo:     empRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		targetRepo:  targetRepo,
	}
}

func (s *entryService) RecordSale(ctx context.Context, req *dto.SaleRequest) (*domain.Sale, error) {
	period, err := domain.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	channel := domain.Channel(req.Channel)
	if !channel.Valid() {
		return nil, domain.ErrInvalidChannel
	}

	amount, err := nonNegative(req.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		EmployeeID: req.EmployeeID,
		Channel:    channel,
		Amount:     amount,
		Year:       period.Year,
		Month:      period.Month,
	}
	if err := s.saleRepo.Upsert(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *entryService) ListSales(ctx context.Context, filter repository.EntryFilter) ([]domain.Sale, error) {
	return s.saleRepo.List(ctx, filter)
}

func (s *entryService) RecordExpense(ctx context.Context, req *dto.ExpenseRequest) (*domain.Expense, error) {
	period, err := domain.NewPeriod(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	expenseType := domain.ExpenseType(req.Type)
	if !expenseType.Valid() {
		return nil, domain.ErrInvalidExpenseType
	}

	amount, err := nonNegative(req.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		EmployeeID: req.EmployeeID,
		Type:       expenseType,
		Amount:     amount,
		Year:       period.Year,
		Month:      period.Month,
	}
	if err := s.expenseRepo.Upsert(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *entryService) ListExpenses(ctx context.Context, filter repository.EntryFilter) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx, filter)
}

func (s *entryService) SetTarget(ctx context.Context, req *dto.TargetRequest) (domain.TargetSpec, error) {
	period, err := domain.NewPeriod(req.Year, req.Month)
	if err != nil {
		return domain.TargetSpec{}, err
	}

	spec := domain.TargetSpec{
		Facebook: decimal.NewFromFloat(req.Facebook),
		Shopee:   decimal.NewFromFloat(req.Shopee),
		Lazada:   decimal.NewFromFloat(req.Lazada),
	}
	if err := spec.Validate(); err != nil {
		return domain.TargetSpec{}, err
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return domain.TargetSpec{}, err
	}

	if err := s.targetRepo.Upsert(ctx, req.EmployeeID, period, spec); err != nil {
		return domain.TargetSpec{}, err
	}

	return spec, nil
}

func (s *entryService) GetTarget(ctx context.Context, employeeID int64, p domain.Period) (domain.TargetSpec, error) {
	if err := p.Validate(); err != nil {
		return domain.TargetSpec{}, err
	}

	if _, err := s.empRepo.GetByID(ctx, employeeID); err != nil {
		return domain.TargetSpec{}, err
	}

	spec, err := s.targetRepo.Get(ctx, employeeID, p)
	if err != nil {
		return domain.TargetSpec{}, err
	}
	if spec == nil {
		return domain.TargetSpec{Facebook: decimal.Zero, Shopee: decimal.Zero, Lazada: decimal.Zero}, nil
	}
	return *spec, nil
}

func nonNegative(amount *float64) (decimal.Decimal, error) {
	if amount == nil {
		return decimal.Zero, nil
	}
	d := decimal.NewFromFloat(*amount)
	if d.IsNegative() {
		return decimal.Zero, domain.ErrNegativeAmount
	}
	return d, nil
}
