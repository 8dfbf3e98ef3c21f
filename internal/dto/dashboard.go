package dto

// ChannelTargets - per-channel targets with their sum
type ChannelTargets struct {
	Facebook float64 `json:"facebook"`
	Shopee   float64 `json:"shopee"`
	Lazada   float64 `json:"lazada"`
	Total    float64 `json:"total"`
}

// ChannelSales - sales per channel; every channel is always present
type ChannelSales struct {
	Facebook float64 `json:"facebook"`
	Shopee   float64 `json:"shopee"`
	Lazada   float64 `json:"lazada"`
}

// ExpenseBreakdown - expenses per type; every type is always present
type ExpenseBreakdown struct {
	Cost float64 `json:"cost"`
	Ads  float64 `json:"ads"`
	Fees float64 `json:"fees"`
}

// Performance - derived figures shared by employee and branch records.
// Percentages are formatted with exactly one decimal place.
type Performance struct {
	Targets        ChannelTargets   `json:"targets"`
	Sales          ChannelSales     `json:"sales"`
	TotalSales     float64          `json:"totalSales"`
	Expenses       ExpenseBreakdown `json:"expenses"`
	TotalExpenses  float64          `json:"totalExpenses"`
	NetProfit      float64          `json:"netProfit"`
	PerformancePct string           `json:"performancePct"`
	DiffFromTarget float64          `json:"diffFromTarget"`
	CostPct        string           `json:"costPct"`
	AdsPct         string           `json:"adsPct"`
	FeesPct        string           `json:"feesPct"`
	TotalExpPct    string           `json:"totalExpPct"`
}

// EmployeePerformance - one employee in a dashboard response
type EmployeePerformance struct {
	ID       int64  `json:"id"`
	BranchID int64  `json:"branch_id"`
	Name     string `json:"name"`
	Performance
}

// BranchPerformance - one branch in a dashboard response
type BranchPerformance struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Performance
	Employees []EmployeePerformance `json:"employees"`
}

// PeriodSummary - one month of company-wide history
type PeriodSummary struct {
	Year          int          `json:"year"`
	Month         int          `json:"month"`
	Sales         ChannelSales `json:"sales"`
	TotalSales    float64      `json:"totalSales"`
	TotalTarget   float64      `json:"totalTarget"`
	TotalExpenses float64      `json:"totalExpenses"`
	NetProfit     float64      `json:"netProfit"`
}
