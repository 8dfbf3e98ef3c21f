package repository

import (
	"github.com/sales-dashboard-api/internal/domain"
	"gorm.io/gorm"
)

// EntryFilter narrows sale and expense listings. Nil fields match everything.
type EntryFilter struct {
	EmployeeID *int64
	Year       *int
	Month      *int
}

func (f EntryFilter) apply(query *gorm.DB) *gorm.DB {
	if f.EmployeeID != nil {
		query = query.Where("employee_id = ?", *f.EmployeeID)
	}
	if f.Year != nil {
		query = query.Where("year = ?", *f.Year)
	}
	if f.Month != nil {
		query = query.Where("month = ?", *f.Month)
	}
	return query
}

func inPeriod(query *gorm.DB, p domain.Period) *gorm.DB {
	return query.Where("year = ? AND month = ?", p.Year, p.Month)
}
