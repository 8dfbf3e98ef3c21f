package service

import (
	"context"
	"strings"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/repository"
	"github.com/shopspring/decimal"
)

// EmployeeService defines employee administration
type EmployeeService interface {
	// List returns employees in creation order, optionally for one branch only.
	List(ctx context.Context, branchID *int64) ([]domain.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	// Delete removes the employee with all their figures.
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo    repository.EmployeeRepository
	branchRepo repository.BranchRepository
}

// NewEmployeeService creates an employee service
func NewEmployeeService(empRepo repository.EmployeeRepository, branchRepo repository.BranchRepository) EmployeeService {
	return &employeeService{
		empRepo:    empRepo,
		branchRepo: branchRepo,
	}
}

func (s *employeeService) List(ctx context.Context, branchID *int64) ([]domain.Employee, error) {
	if branchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, *branchID); err != nil {
			return nil, err
		}
	}
	return s.empRepo.List(ctx, branchID)
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	branch, err := s.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		BranchID:       branch.ID,
		Name:           strings.TrimSpace(req.Name),
		TargetFacebook: decimal.NewFromFloat(req.TargetFacebook),
		TargetShopee:   decimal.NewFromFloat(req.TargetShopee),
		TargetLazada:   decimal.NewFromFloat(req.TargetLazada),
	}
	if err := emp.FixedTarget().Validate(); err != nil {
		return nil, err
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	emp.Branch = branch
	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BranchID != nil && *req.BranchID != emp.BranchID {
		branch, err := s.branchRepo.GetByID(ctx, *req.BranchID)
		if err != nil {
			return nil, err
		}
		emp.BranchID = branch.ID
		emp.Branch = branch
	}
	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.TargetFacebook != nil {
		emp.TargetFacebook = decimal.NewFromFloat(*req.TargetFacebook)
	}
	if req.TargetShopee != nil {
		emp.TargetShopee = decimal.NewFromFloat(*req.TargetShopee)
	}
	if req.TargetLazada != nil {
		emp.TargetLazada = decimal.NewFromFloat(*req.TargetLazada)
	}
	if err := emp.FixedTarget().Validate(); err != nil {
		return nil, err
	}

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.empRepo.Delete(ctx, id)
}
