package repository

import (
	"context"
	"errors"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseRepository defines access to monthly expense figures
type ExpenseRepository interface {
	// Upsert stores the amount for (employee, type, year, month),
	// replacing any amount already recorded for that key.
	Upsert(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context, filter EntryFilter) ([]domain.Expense, error)
	// SumByType returns the employee's expenses in p keyed by type.
	// Types without a row are absent from the map.
	SumByType(ctx context.Context, employeeID int64, p domain.Period) (map[domain.ExpenseType]decimal.Decimal, error)
	// SumAll returns the total of every expense of every employee in p.
	SumAll(ctx context.Context, p domain.Period) (decimal.Decimal, error)
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a gorm-backed expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Upsert(ctx context.Context, expense *domain.Expense) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "type"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrEmployeeNotFound
		}
		return err
	}

	var stored domain.Expense
	err = inPeriod(r.db.WithContext(ctx), domain.Period{Year: expense.Year, Month: expense.Month}).
		Where("employee_id = ? AND type = ?", expense.EmployeeID, expense.Type).
		First(&stored).Error
	if err != nil {
		return err
	}
	*expense = stored
	return nil
}

func (r *expenseRepository) List(ctx context.Context, filter EntryFilter) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	err := filter.apply(r.db.WithContext(ctx)).
		Order("year DESC, month DESC, employee_id ASC, type ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepository) SumByType(ctx context.Context, employeeID int64, p domain.Period) (map[domain.ExpenseType]decimal.Decimal, error) {
	var rows []domain.Expense
	err := inPeriod(r.db.WithContext(ctx), p).
		Where("employee_id = ?", employeeID).
		Select("type", "amount").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.ExpenseType]decimal.Decimal)
	for _, row := range rows {
		totals[row.Type] = totals[row.Type].Add(row.Amount)
	}
	return totals, nil
}

func (r *expenseRepository) SumAll(ctx context.Context, p domain.Period) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := inPeriod(r.db.WithContext(ctx).Model(&domain.Expense{}), p).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}
