package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Target storage modes
const (
	TargetModeMonthly = "monthly"
	TargetModeFixed   = "fixed"
)

// TargetRepository looks up and stores per-channel sales targets keyed by
// (employee, period). How targets are stored is up to the implementation.
type TargetRepository interface {
	// Get returns the employee's target for p, or nil when none is set.
	Get(ctx context.Context, employeeID int64, p domain.Period) (*domain.TargetSpec, error)
	// Upsert sets the employee's target for p, replacing any previous one.
	Upsert(ctx context.Context, employeeID int64, p domain.Period, spec domain.TargetSpec) error
	// SumAll returns the sum of all channel targets of every employee for p.
	SumAll(ctx context.Context, p domain.Period) (decimal.Decimal, error)
}

// NewTargetRepository returns the target repository for mode.
func NewTargetRepository(db *gorm.DB, mode string) (TargetRepository, error) {
	switch mode {
	case TargetModeMonthly:
		return NewMonthlyTargetRepository(db), nil
	case TargetModeFixed:
		return NewFixedTargetRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown target mode %q", mode)
	}
}

type monthlyTargetRepository struct {
	db *gorm.DB
}

// NewMonthlyTargetRepository stores one target row per employee and month.
func NewMonthlyTargetRepository(db *gorm.DB) TargetRepository {
	return &monthlyTargetRepository{db: db}
}

func (r *monthlyTargetRepository) Get(ctx context.Context, employeeID int64, p domain.Period) (*domain.TargetSpec, error) {
	var target domain.MonthlyTarget
	err := inPeriod(r.db.WithContext(ctx), p).
		Where("employee_id = ?", employeeID).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	spec := target.Spec()
	return &spec, nil
}

func (r *monthlyTargetRepository) Upsert(ctx context.Context, employeeID int64, p domain.Period, spec domain.TargetSpec) error {
	target := domain.MonthlyTarget{
		EmployeeID: employeeID,
		Year:       p.Year,
		Month:      p.Month,
		Facebook:   spec.Facebook,
		Shopee:     spec.Shopee,
		Lazada:     spec.Lazada,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"facebook", "shopee", "lazada", "updated_at"}),
	}).Create(&target).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrEmployeeNotFound
	}
	return err
}

func (r *monthlyTargetRepository) SumAll(ctx context.Context, p domain.Period) (decimal.Decimal, error) {
	var rows []domain.MonthlyTarget
	err := inPeriod(r.db.WithContext(ctx), p).
		Select("facebook", "shopee", "lazada").
		Find(&rows).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Facebook).Add(row.Shopee).Add(row.Lazada)
	}
	return total, nil
}

type fixedTargetRepository struct {
	db *gorm.DB
}

// NewFixedTargetRepository reads targets from the employee's own fields.
// The same target applies to every period.
func NewFixedTargetRepository(db *gorm.DB) TargetRepository {
	return &fixedTargetRepository{db: db}
}

func (r *fixedTargetRepository) Get(ctx context.Context, employeeID int64, _ domain.Period) (*domain.TargetSpec, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).
		Select("id", "target_facebook", "target_shopee", "target_lazada").
		First(&emp, employeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	spec := emp.FixedTarget()
	return &spec, nil
}

func (r *fixedTargetRepository) Upsert(ctx context.Context, employeeID int64, _ domain.Period, spec domain.TargetSpec) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]any{
			"target_facebook": spec.Facebook,
			"target_shopee":   spec.Shopee,
			"target_lazada":   spec.Lazada,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *fixedTargetRepository) SumAll(ctx context.Context, _ domain.Period) (decimal.Decimal, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Select("target_facebook", "target_shopee", "target_lazada").
		Find(&employees).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range employees {
		spec := employees[i].FixedTarget()
		total = total.Add(spec.Facebook).Add(spec.Shopee).Add(spec.Lazada)
	}
	return total, nil
}
