package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/sales-dashboard-api/internal/domain"
	"github.com/sales-dashboard-api/internal/repository"
	"github.com/shopspring/decimal"
)

var errDatabaseDown = errors.New("connection refused")

type fakeBranchRepo struct {
	branches []domain.Branch
	nextID   int64
	listErr  error
}

func (f *fakeBranchRepo) Create(_ context.Context, b *domain.Branch) error {
	f.nextID++
	b.ID = f.nextID
	f.branches = append(f.branches, *b)
	return nil
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id int64) (*domain.Branch, error) {
	for _, b := range f.branches {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, domain.ErrBranchNotFound
}

func (f *fakeBranchRepo) List(_ context.Context) ([]domain.Branch, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Branch{}, f.branches...), nil
}

func (f *fakeBranchRepo) Update(_ context.Context, b *domain.Branch) error {
	for i := range f.branches {
		if f.branches[i].ID == b.ID {
			f.branches[i] = *b
			return nil
		}
	}
	return domain.ErrBranchNotFound
}

func (f *fakeBranchRepo) DeleteCascade(_ context.Context, id int64) error {
	for i := range f.branches {
		if f.branches[i].ID == id {
			f.branches = append(f.branches[:i], f.branches[i+1:]...)
			return nil
		}
	}
	return domain.ErrBranchNotFound
}

type fakeEmployeeRepo struct {
	employees []domain.Employee
	nextID    int64
	listErr   error
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	f.nextID++
	e.ID = f.nextID
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, branchID *int64) ([]domain.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := []domain.Employee{}
	for _, e := range f.employees {
		if branchID == nil || e.BranchID == *branchID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = *e
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrEmployeeNotFound
}

type saleKey struct {
	employeeID int64
	channel    domain.Channel
	period     domain.Period
}

type fakeSaleRepo struct {
	mu     sync.Mutex
	rows   map[saleKey]decimal.Decimal
	sumErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{rows: make(map[saleKey]decimal.Decimal)}
}

func (f *fakeSaleRepo) Upsert(_ context.Context, s *domain.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[saleKey{s.EmployeeID, s.Channel, domain.Period{Year: s.Year, Month: s.Month}}] = s.Amount
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, filter repository.EntryFilter) ([]domain.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Sale
	for k, v := range f.rows {
		if filter.EmployeeID != nil && *filter.EmployeeID != k.employeeID {
			continue
		}
		result = append(result, domain.Sale{EmployeeID: k.employeeID, Channel: k.channel, Amount: v, Year: k.period.Year, Month: k.period.Month})
	}
	return result, nil
}

func (f *fakeSaleRepo) SumByChannel(_ context.Context, employeeID int64, p domain.Period) (map[domain.Channel]decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sumErr != nil {
		return nil, f.sumErr
	}
	totals := make(map[domain.Channel]decimal.Decimal)
	for k, v := range f.rows {
		if k.employeeID == employeeID && k.period == p {
			totals[k.channel] = totals[k.channel].Add(v)
		}
	}
	return totals, nil
}

func (f *fakeSaleRepo) SumAllByChannel(_ context.Context, p domain.Period) (map[domain.Channel]decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sumErr != nil {
		return nil, f.sumErr
	}
	totals := make(map[domain.Channel]decimal.Decimal)
	for k, v := range f.rows {
		if k.period == p {
			totals[k.channel] = totals[k.channel].Add(v)
		}
	}
	return totals, nil
}

type expenseKey struct {
	employeeID  int64
	expenseType domain.ExpenseType
	period      domain.Period
}

type fakeExpenseRepo struct {
	mu   sync.Mutex
	rows map[expenseKey]decimal.Decimal
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{rows: make(map[expenseKey]decimal.Decimal)}
}

func (f *fakeExpenseRepo) Upsert(_ context.Context, e *domain.Expense) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[expenseKey{e.EmployeeID, e.Type, domain.Period{Year: e.Year, Month: e.Month}}] = e.Amount
	return nil
}

func (f *fakeExpenseRepo) List(_ context.Context, _ repository.EntryFilter) ([]domain.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Expense
	for k, v := range f.rows {
		result = append(result, domain.Expense{EmployeeID: k.employeeID, Type: k.expenseType, Amount: v, Year: k.period.Year, Month: k.period.Month})
	}
	return result, nil
}

func (f *fakeExpenseRepo) SumByType(_ context.Context, employeeID int64, p domain.Period) (map[domain.ExpenseType]decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	totals := make(map[domain.ExpenseType]decimal.Decimal)
	for k, v := range f.rows {
		if k.employeeID == employeeID && k.period == p {
			totals[k.expenseType] = totals[k.expenseType].Add(v)
		}
	}
	return totals, nil
}

func (f *fakeExpenseRepo) SumAll(_ context.Context, p domain.Period) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := decimal.Zero
	for k, v := range f.rows {
		if k.period == p {
			total = total.Add(v)
		}
	}
	return total, nil
}

type targetKey struct {
	employeeID int64
	period     domain.Period
}

type fakeTargetRepo struct {
	mu      sync.Mutex
	targets map[targetKey]domain.TargetSpec
}

func newFakeTargetRepo() *fakeTargetRepo {
	return &fakeTargetRepo{targets: make(map[targetKey]domain.TargetSpec)}
}

func (f *fakeTargetRepo) Get(_ context.Context, employeeID int64, p domain.Period) (*domain.TargetSpec, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if spec, ok := f.targets[targetKey{employeeID, p}]; ok {
		return &spec, nil
	}
	return nil, nil
}

func (f *fakeTargetRepo) Upsert(_ context.Context, employeeID int64, p domain.Period, spec domain.TargetSpec) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets[targetKey{employeeID, p}] = spec
	return nil
}

func (f *fakeTargetRepo) SumAll(_ context.Context, p domain.Period) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := decimal.Zero
	for k, spec := range f.targets {
		if k.period == p {
			total = total.Add(spec.Facebook).Add(spec.Shopee).Add(spec.Lazada)
		}
	}
	return total, nil
}

type fakeUserRepo struct {
	users  []domain.User
	nextID int64
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}
