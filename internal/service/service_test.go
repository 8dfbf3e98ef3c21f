package service_test

import (
	"context"
	"testing"

	"github.com/sales-dashboard-api/internal/auth"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/dto"
	"github.com/sales-dashboard-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_RecordSaleValidation(t *testing.T) {
	f := newDashboardFixture()
	_, emp := f.seedSomchai(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.SaleRequest
		wantErr error
	}{
		{"month zero", dto.SaleRequest{EmployeeID: emp.ID, Channel: "facebook", Amount: ptr(1.0), Year: 2025, Month: 0}, domain.ErrInvalidPeriod},
		{"month thirteen", dto.SaleRequest{EmployeeID: emp.ID, Channel: "facebook", Amount: ptr(1.0), Year: 2025, Month: 13}, domain.ErrInvalidPeriod},
		{"unknown channel", dto.SaleRequest{EmployeeID: emp.ID, Channel: "tiktok", Amount: ptr(1.0), Year: 2025, Month: 3}, domain.ErrInvalidChannel},
		{"negative amount", dto.SaleRequest{EmployeeID: emp.ID, Channel: "facebook", Amount: ptr(-1.0), Year: 2025, Month: 3}, domain.ErrNegativeAmount},
		{"unknown employee", dto.SaleRequest{EmployeeID: 404, Channel: "facebook", Amount: ptr(1.0), Year: 2025, Month: 3}, domain.ErrEmployeeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.entries.RecordSale(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryService_RecordExpenseValidation(t *testing.T) {
	f := newDashboardFixture()
	_, emp := f.seedSomchai(t)
	ctx := context.Background()

	_, err := f.entries.RecordExpense(ctx, &dto.ExpenseRequest{EmployeeID: emp.ID, Type: "rent", Amount: ptr(1.0), Year: 2025, Month: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidExpenseType)

	_, err = f.entries.RecordExpense(ctx, &dto.ExpenseRequest{EmployeeID: emp.ID, Type: "fees", Amount: ptr(-5.0), Year: 2025, Month: 3})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	expense, err := f.entries.RecordExpense(ctx, &dto.ExpenseRequest{EmployeeID: emp.ID, Type: "fees", Amount: ptr(0.0), Year: 2025, Month: 3})
	require.NoError(t, err)
	assertAmount(t, "0", expense.Amount, "amount")
}

func TestEntryService_Targets(t *testing.T) {
	f := newDashboardFixture()
	_, emp := f.seedSomchai(t)
	ctx := context.Background()

	spec, err := f.entries.GetTarget(ctx, emp.ID, march)
	require.NoError(t, err)
	assertAmount(t, "1000", spec.Facebook, "facebook")

	spec, err = f.entries.GetTarget(ctx, emp.ID, domain.Period{Year: 2025, Month: 4})
	require.NoError(t, err)
	assertAmount(t, "0", spec.Facebook, "facebook")
	assertAmount(t, "0", spec.Lazada, "lazada")

	_, err = f.entries.GetTarget(ctx, 404, march)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = f.entries.SetTarget(ctx, &dto.TargetRequest{EmployeeID: emp.ID, Year: 2025, Month: 3, Shopee: -1})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = f.entries.SetTarget(ctx, &dto.TargetRequest{EmployeeID: emp.ID, Year: 2025, Month: 14})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestBranchService(t *testing.T) {
	repo := &fakeBranchRepo{}
	svc := service.NewBranchService(repo)
	ctx := context.Background()

	branch, err := svc.Create(ctx, &dto.CreateBranchRequest{Name: "  Silom  "})
	require.NoError(t, err)
	assert.Equal(t, "Silom", branch.Name)
	assert.Equal(t, service.DefaultBranchColor, branch.Color)

	updated, err := svc.Update(ctx, branch.ID, &dto.UpdateBranchRequest{Color: ptr("#ff0000")})
	require.NoError(t, err)
	assert.Equal(t, "Silom", updated.Name)
	assert.Equal(t, "#ff0000", updated.Color)

	_, err = svc.Update(ctx, 999, &dto.UpdateBranchRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	require.NoError(t, svc.Delete(ctx, branch.ID))
	assert.ErrorIs(t, svc.Delete(ctx, branch.ID), domain.ErrBranchNotFound)
}

func TestEmployeeService(t *testing.T) {
	branches := &fakeBranchRepo{}
	employees := &fakeEmployeeRepo{}
	svc := service.NewEmployeeService(employees, branches)
	ctx := context.Background()

	silom := domain.Branch{Name: "Silom"}
	require.NoError(t, branches.Create(ctx, &silom))
	asok := domain.Branch{Name: "Asok"}
	require.NoError(t, branches.Create(ctx, &asok))

	_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{BranchID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	emp, err := svc.Create(ctx, &dto.CreateEmployeeRequest{BranchID: silom.ID, Name: "Somchai", TargetFacebook: 1000})
	require.NoError(t, err)
	require.NotNil(t, emp.Branch)
	assert.Equal(t, "Silom", emp.Branch.Name)
	assertAmount(t, "1000", emp.TargetFacebook, "target_facebook")

	moved, err := svc.Update(ctx, emp.ID, &dto.UpdateEmployeeRequest{BranchID: &asok.ID, TargetLazada: ptr(50.0)})
	require.NoError(t, err)
	assert.Equal(t, asok.ID, moved.BranchID)
	assertAmount(t, "50", moved.TargetLazada, "target_lazada")
	assertAmount(t, "1000", moved.TargetFacebook, "target_facebook")

	_, err = svc.Update(ctx, emp.ID, &dto.UpdateEmployeeRequest{TargetShopee: ptr(-1.0)})
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	inAsok, err := svc.List(ctx, &asok.ID)
	require.NoError(t, err)
	assert.Len(t, inAsok, 1)

	_, err = svc.List(ctx, ptr(int64(999)))
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	require.NoError(t, svc.Delete(ctx, emp.ID))
	assert.ErrorIs(t, svc.Delete(ctx, emp.ID), domain.ErrEmployeeNotFound)
}

type stubIssuer struct{}

func (stubIssuer) Issue(user *domain.User) (string, error) {
	return "token-for-" + user.Username, nil
}

func TestAuthService(t *testing.T) {
	users := &fakeUserRepo{}
	svc := service.NewAuthService(users, stubIssuer{})
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "admin123", "Administrator")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "admin123", "Administrator")
	require.NoError(t, err)
	assert.False(t, created, "admin is only bootstrapped into an empty user table")

	token, user, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-admin", token)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	ok, err := auth.CheckPassword(user.PasswordHash, "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	somchai, err := svc.Register(ctx, &dto.RegisterRequest{Username: "somchai", Password: "secret1", Name: "Somchai"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, somchai.Role)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "somchai", Password: "secret1", Name: "Again"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "root", Password: "secret1", Name: "Root", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	me, err := svc.Me(ctx, somchai.ID)
	require.NoError(t, err)
	assert.Equal(t, "somchai", me.Username)
}
