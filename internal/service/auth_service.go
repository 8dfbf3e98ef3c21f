package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sales-dashboard-api/internal/auth"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/repository"
)

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// AuthService defines login and account management
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
	// EnsureAdmin creates the administrator account when no user exists yet.
	// It reports whether an account was created.
	EnsureAdmin(ctx context.Context, username, password, name string) (bool, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

// NewAuthService creates an auth service
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	return s.create(ctx, strings.TrimSpace(req.Username), req.Password, strings.TrimSpace(req.Name), role)
}

func (s *authService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password, name string) (bool, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if _, err := s.create(ctx, username, password, name, domain.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *authService) create(ctx context.Context, username, password, name string, role domain.Role) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
