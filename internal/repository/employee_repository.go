package repository

import (
	"context"
	"errors"

	"github.com/sales-dashboard-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EmployeeRepository defines access to employees
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	// List returns employees in ascending id order, optionally restricted to one branch.
	List(ctx context.Context, branchID *int64) ([]domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	// Delete removes the employee together with its sales, expenses and targets.
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a gorm-backed employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(emp).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrBranchNotFound
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).Preload("Branch").First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, branchID *int64) ([]domain.Employee, error) {
	query := r.db.WithContext(ctx).Preload("Branch")
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}

	employees := []domain.Employee{}
	err := query.Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(emp).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrBranchNotFound
	}
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteEmployees(tx, []int64{id}, true)
	})
}

// deleteEmployees removes the employees and every row they own. With
// mustExist set, deleting nothing is reported as ErrEmployeeNotFound.
func deleteEmployees(tx *gorm.DB, ids []int64, mustExist bool) error {
	if len(ids) == 0 {
		return nil
	}

	for _, owned := range []any{&domain.Sale{}, &domain.Expense{}, &domain.MonthlyTarget{}} {
		if err := tx.Where("employee_id IN ?", ids).Delete(owned).Error; err != nil {
			return err
		}
	}

	result := tx.Where("id IN ?", ids).Delete(&domain.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if mustExist && result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
