package dashboard

import (
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

// EmployeeInput is everything known about one employee for one period.
type EmployeeInput struct {
	Employee domain.Employee
	Target   *domain.TargetSpec
	Sales    map[domain.Channel]decimal.Decimal
	Expenses map[domain.ExpenseType]decimal.Decimal
}

// EmployeePerformance is the performance record of one employee.
type EmployeePerformance struct {
	Employee domain.Employee
	Performance
}

// BranchPerformance is the performance record of one branch together with
// the records of its employees in creation order.
type BranchPerformance struct {
	Branch    domain.Branch
	Employees []EmployeePerformance
	Performance
}

// AggregateEmployee derives the performance record of one employee.
// A nil target and missing channels or expense types count as zero.
func AggregateEmployee(in EmployeeInput) EmployeePerformance {
	return EmployeePerformance{
		Employee: in.Employee,
		Performance: derive(
			ChannelAmountsFromTarget(in.Target),
			ChannelAmountsFrom(in.Sales),
			ExpenseAmountsFrom(in.Expenses),
		),
	}
}

// AggregateBranch sums the employees' targets, sales and expenses and
// derives the branch percentages from those sums.
func AggregateBranch(branch domain.Branch, employees []EmployeePerformance) BranchPerformance {
	targets := ChannelAmountsFrom(nil)
	sales := ChannelAmountsFrom(nil)
	expenses := ExpenseAmountsFrom(nil)

	for _, e := range employees {
		targets = targets.Add(e.Targets)
		sales = sales.Add(e.Sales)
		expenses = expenses.Add(e.Expenses)
	}

	if employees == nil {
		employees = []EmployeePerformance{}
	}

	return BranchPerformance{
		Branch:      branch,
		Employees:   employees,
		Performance: derive(targets, sales, expenses),
	}
}
