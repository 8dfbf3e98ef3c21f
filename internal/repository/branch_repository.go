package repository

import (
	"context"
	"errors"

	"github.com/sales-dashboard-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BranchRepository defines access to branches
type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) error
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	// List returns all branches in ascending id order.
	List(ctx context.Context) ([]domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) error
	// DeleteCascade removes the branch, its employees and everything they own.
	DeleteCascade(ctx context.Context, id int64) error
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a gorm-backed branch repository
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *domain.Branch) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(branch).Error
}

func (r *branchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	var branch domain.Branch
	err := r.db.WithContext(ctx).First(&branch, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBranchNotFound
		}
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) List(ctx context.Context) ([]domain.Branch, error) {
	branches := []domain.Branch{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepository) Update(ctx context.Context, branch *domain.Branch) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(branch).Error
}

func (r *branchRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var employeeIDs []int64
		if err := tx.Model(&domain.Employee{}).Where("branch_id = ?", id).Pluck("id", &employeeIDs).Error; err != nil {
			return err
		}

		if err := deleteEmployees(tx, employeeIDs, false); err != nil {
			return err
		}

		result := tx.Delete(&domain.Branch{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrBranchNotFound
		}
		return nil
	})
}
