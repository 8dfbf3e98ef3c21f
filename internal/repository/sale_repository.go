package repository

import (
	"context"
	"errors"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleRepository defines access to monthly sales figures
type SaleRepository interface {
	// Upsert stores the amount for (employee, channel, year, month),
	// replacing any amount already recorded for that key.
	Upsert(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, filter EntryFilter) ([]domain.Sale, error)
	// SumByChannel returns the employee's sales in p keyed by channel.
	// Channels without a row are absent from the map.
	SumByChannel(ctx context.Context, employeeID int64, p domain.Period) (map[domain.Channel]decimal.Decimal, error)
	// SumAllByChannel is SumByChannel across every employee.
	SumAllByChannel(ctx context.Context, p domain.Period) (map[domain.Channel]decimal.Decimal, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a gorm-backed sale repository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Upsert(ctx context.Context, sale *domain.Sale) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "channel"}, {Name: "year"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrEmployeeNotFound
		}
		return err
	}

	var stored domain.Sale
	err = inPeriod(r.db.WithContext(ctx), domain.Period{Year: sale.Year, Month: sale.Month}).
		Where("employee_id = ? AND channel = ?", sale.EmployeeID, sale.Channel).
		First(&stored).Error
	if err != nil {
		return err
	}
	*sale = stored
	return nil
}

func (r *saleRepository) List(ctx context.Context, filter EntryFilter) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	err := filter.apply(r.db.WithContext(ctx)).
		Order("year DESC, month DESC, employee_id ASC, channel ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) SumByChannel(ctx context.Context, employeeID int64, p domain.Period) (map[domain.Channel]decimal.Decimal, error) {
	return r.sum(inPeriod(r.db.WithContext(ctx), p).Where("employee_id = ?", employeeID))
}

func (r *saleRepository) SumAllByChannel(ctx context.Context, p domain.Period) (map[domain.Channel]decimal.Decimal, error) {
	return r.sum(inPeriod(r.db.WithContext(ctx), p))
}

func (r *saleRepository) sum(query *gorm.DB) (map[domain.Channel]decimal.Decimal, error) {
	var rows []domain.Sale
	if err := query.Select("channel", "amount").Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[domain.Channel]decimal.Decimal)
	for _, row := range rows {
		totals[row.Channel] = totals[row.Channel].Add(row.Amount)
	}
	return totals, nil
}
