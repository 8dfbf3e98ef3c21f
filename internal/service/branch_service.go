package service

import (
	"context"
	"strings"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/repository"
)

// DefaultBranchColor is used when a branch is created without a color.
const DefaultBranchColor = "#3b82f6"

// BranchService defines branch administration
type BranchService interface {
	List(ctx context.Context) ([]domain.Branch, error)
	Create(ctx context.Context, req *dto.CreateBranchRequest) (*domain.Branch, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBranchRequest) (*domain.Branch, error)
	// Delete removes the branch with its employees and all their figures.
	Delete(ctx context.Context, id int64) error
}

type branchService struct {
	branchRepo repository.BranchRepository
}

// NewBranchService creates a branch service
func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) List(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.List(ctx)
}

func (s *branchService) Create(ctx context.Context, req *dto.CreateBranchRequest) (*domain.Branch, error) {
	branch := &domain.Branch{
		Name:  strings.TrimSpace(req.Name),
		Color: strings.TrimSpace(req.Color),
	}
	if branch.Color == "" {
		branch.Color = DefaultBranchColor
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

func (s *branchService) Update(ctx context.Context, id int64, req *dto.UpdateBranchRequest) (*domain.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = strings.TrimSpace(*req.Name)
	}
	if req.Color != nil {
		branch.Color = strings.TrimSpace(*req.Color)
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

func (s *branchService) Delete(ctx context.Context, id int64) error {
	return s.branchRepo.DeleteCascade(ctx, id)
}
