package dashboard_test

import (
	"testing"

	"github.com/sales-dashboard-api/internal/dashboard"
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: expected %s, got %s", field, want, got.String())
}

func TestSafePercent(t *testing.T) {
	tests := []struct {
		name        string
		numerator   string
		denominator string
		want        string
	}{
		{"zero denominator", "150", "0", "0.0"},
		{"negative numerator zero denominator", "-150", "0", "0.0"},
		{"negative denominator", "50", "-10", "0.0"},
		{"over target", "150", "100", "150.0"},
		{"rounds down", "1400", "1500", "93.3"},
		{"rounds up", "200", "1400", "14.3"},
		{"zero numerator", "0", "100", "0.0"},
		{"exact", "1", "8", "12.5"},
		{"negative numerator", "-50", "100", "-50.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dashboard.SafePercent(d(tt.numerator), d(tt.denominator)))
		})
	}
}

func somchaiInput() dashboard.EmployeeInput {
	return dashboard.EmployeeInput{
		Employee: domain.Employee{ID: 1, BranchID: 1, Name: "Somchai"},
		Target:   &domain.TargetSpec{Facebook: d("1000"), Shopee: d("500"), Lazada: d("0")},
		Sales: map[domain.Channel]decimal.Decimal{
			domain.ChannelFacebook: d("800"),
			domain.ChannelShopee:   d("600"),
		},
		Expenses: map[domain.ExpenseType]decimal.Decimal{
			domain.ExpenseCost: d("200"),
			domain.ExpenseAds:  d("50"),
		},
	}
}

func assertSomchaiFigures(t *testing.T, p dashboard.Performance) {
	t.Helper()
	assertAmount(t, "1500", p.TotalTarget, "totalTarget")
	assertAmount(t, "1400", p.TotalSales, "totalSales")
	assertAmount(t, "250", p.TotalExpenses, "totalExpenses")
	assertAmount(t, "1150", p.NetProfit, "netProfit")
	assertAmount(t, "-100", p.DiffFromTarget, "diffFromTarget")
	assertAmount(t, "0", p.Sales.Lazada, "sales.lazada")
	assertAmount(t, "0", p.Expenses.Fees, "expenses.fees")
	assert.Equal(t, "93.3", p.PerformancePct)
	assert.Equal(t, "14.3", p.CostPct)
	assert.Equal(t, "3.6", p.AdsPct)
	assert.Equal(t, "0.0", p.FeesPct)
	assert.Equal(t, "17.9", p.TotalExpPct)
}

func TestAggregateEmployee_Scenario(t *testing.T) {
	emp := dashboard.AggregateEmployee(somchaiInput())

	assert.Equal(t, "Somchai", emp.Employee.Name)
	assertSomchaiFigures(t, emp.Performance)
}

func TestAggregateBranch_SingleEmployeeMatchesEmployee(t *testing.T) {
	emp := dashboard.AggregateEmployee(somchaiInput())
	branch := dashboard.AggregateBranch(domain.Branch{ID: 1, Name: "Silom"}, []dashboard.EmployeePerformance{emp})

	require.Len(t, branch.Employees, 1)
	assert.Equal(t, "Silom", branch.Branch.Name)
	assertSomchaiFigures(t, branch.Performance)
}

func TestAggregateEmployee_AbsenceIsZero(t *testing.T) {
	emp := dashboard.AggregateEmployee(dashboard.EmployeeInput{
		Employee: domain.Employee{ID: 7, Name: "Nobody"},
	})

	assertAmount(t, "0", emp.Sales.Facebook, "sales.facebook")
	assertAmount(t, "0", emp.Sales.Shopee, "sales.shopee")
	assertAmount(t, "0", emp.Sales.Lazada, "sales.lazada")
	assertAmount(t, "0", emp.TotalSales, "totalSales")
	assertAmount(t, "0", emp.TotalTarget, "totalTarget")
	assertAmount(t, "0", emp.Expenses.Cost, "expenses.cost")
	assertAmount(t, "0", emp.NetProfit, "netProfit")
	assert.Equal(t, "0.0", emp.PerformancePct)
	assert.Equal(t, "0.0", emp.TotalExpPct)
}

func TestAggregateEmployee_TotalsAreExactSums(t *testing.T) {
	emp := dashboard.AggregateEmployee(dashboard.EmployeeInput{
		Employee: domain.Employee{ID: 1},
		Sales: map[domain.Channel]decimal.Decimal{
			domain.ChannelFacebook: d("0.1"),
			domain.ChannelShopee:   d("0.2"),
			domain.ChannelLazada:   d("0.3"),
		},
		Expenses: map[domain.ExpenseType]decimal.Decimal{
			domain.ExpenseFees: d("0.15"),
		},
	})

	assertAmount(t, "0.6", emp.TotalSales, "totalSales")
	assert.True(t, emp.TotalSales.Equal(emp.Sales.Facebook.Add(emp.Sales.Shopee).Add(emp.Sales.Lazada)))
	assert.True(t, emp.NetProfit.Equal(emp.TotalSales.Sub(emp.TotalExpenses)))
	assert.Equal(t, "25.0", emp.FeesPct)
}

func TestAggregateEmployee_IgnoresUnknownKeys(t *testing.T) {
	emp := dashboard.AggregateEmployee(dashboard.EmployeeInput{
		Sales: map[domain.Channel]decimal.Decimal{
			domain.Channel("tiktok"): d("999"),
			domain.ChannelLazada:     d("10"),
		},
	})

	assertAmount(t, "10", emp.TotalSales, "totalSales")
}

func TestAggregateBranch_SumThenDivide(t *testing.T) {
	tests := []struct {
		name    string
		salesA  string
		targetA string
		salesB  string
		targetB string
		want    string
	}{
		{"equal targets", "100", "200", "300", "200", "100.0"},
		{"skewed employees", "10", "100", "190", "100", "100.0"},
		{"different target sizes", "50", "100", "150", "1000", "18.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := dashboard.AggregateEmployee(dashboard.EmployeeInput{
				Employee: domain.Employee{ID: 1},
				Target:   &domain.TargetSpec{Facebook: d(tt.targetA)},
				Sales:    map[domain.Channel]decimal.Decimal{domain.ChannelFacebook: d(tt.salesA)},
			})
			b := dashboard.AggregateEmployee(dashboard.EmployeeInput{
				Employee: domain.Employee{ID: 2},
				Target:   &domain.TargetSpec{Shopee: d(tt.targetB)},
				Sales:    map[domain.Channel]decimal.Decimal{domain.ChannelShopee: d(tt.salesB)},
			})

			branch := dashboard.AggregateBranch(domain.Branch{ID: 1}, []dashboard.EmployeePerformance{a, b})

			assert.Equal(t, tt.want, branch.PerformancePct)
			assert.Equal(t, dashboard.SafePercent(branch.TotalSales, branch.TotalTarget), branch.PerformancePct)
			assert.True(t, branch.TotalSales.Equal(a.TotalSales.Add(b.TotalSales)))
			assert.True(t, branch.TotalTarget.Equal(a.TotalTarget.Add(b.TotalTarget)))
		})
	}
}

func TestAggregateBranch_ExpensePercentagesFromTotals(t *testing.T) {
	a := dashboard.AggregateEmployee(dashboard.EmployeeInput{
		Sales:    map[domain.Channel]decimal.Decimal{domain.ChannelFacebook: d("100")},
		Expenses: map[domain.ExpenseType]decimal.Decimal{domain.ExpenseAds: d("50")},
	})
	b := dashboard.AggregateEmployee(dashboard.EmployeeInput{
		Sales:    map[domain.Channel]decimal.Decimal{domain.ChannelFacebook: d("900")},
		Expenses: map[domain.ExpenseType]decimal.Decimal{domain.ExpenseAds: d("50")},
	})

	branch := dashboard.AggregateBranch(domain.Branch{}, []dashboard.EmployeePerformance{a, b})

	assert.Equal(t, "50.0", a.AdsPct)
	assert.Equal(t, "5.6", b.AdsPct)
	assert.Equal(t, "10.0", branch.AdsPct)
	assert.Equal(t, "10.0", branch.TotalExpPct)
	assertAmount(t, "900", branch.NetProfit, "netProfit")
}

func TestAggregateBranch_NoEmployees(t *testing.T) {
	branch := dashboard.AggregateBranch(domain.Branch{ID: 3, Name: "Empty"}, nil)

	require.NotNil(t, branch.Employees)
	assert.Empty(t, branch.Employees)
	assertAmount(t, "0", branch.TotalSales, "totalSales")
	assert.Equal(t, "0.0", branch.PerformancePct)
}

func TestAggregateBranch_Idempotent(t *testing.T) {
	emp := dashboard.AggregateEmployee(somchaiInput())
	first := dashboard.AggregateBranch(domain.Branch{ID: 1}, []dashboard.EmployeePerformance{emp})
	second := dashboard.AggregateBranch(domain.Branch{ID: 1}, []dashboard.EmployeePerformance{emp})

	assert.Equal(t, first.PerformancePct, second.PerformancePct)
	assert.True(t, first.TotalSales.Equal(second.TotalSales))
	assert.True(t, first.NetProfit.Equal(second.NetProfit))
}
