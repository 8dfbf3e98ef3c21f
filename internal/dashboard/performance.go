package dashboard

import (
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ChannelAmounts holds one amount per sales channel. Missing channels are zero.
type ChannelAmounts struct {
	Facebook decimal.Decimal
	Shopee   decimal.Decimal
	Lazada   decimal.Decimal
}

// ChannelAmountsFrom densifies a sparse channel map. Keys outside the
// channel set are ignored.
func ChannelAmountsFrom(m map[domain.Channel]decimal.Decimal) ChannelAmounts {
	return ChannelAmounts{
		Facebook: amountOf(m, domain.ChannelFacebook),
		Shopee:   amountOf(m, domain.ChannelShopee),
		Lazada:   amountOf(m, domain.ChannelLazada),
	}
}

// ChannelAmountsFromTarget converts a target spec; nil means no target (all zero).
func ChannelAmountsFromTarget(t *domain.TargetSpec) ChannelAmounts {
	if t == nil {
		return ChannelAmounts{Facebook: decimal.Zero, Shopee: decimal.Zero, Lazada: decimal.Zero}
	}
	return ChannelAmounts{Facebook: t.Facebook, Shopee: t.Shopee, Lazada: t.Lazada}
}

// Total is the sum of the three channels.
func (c ChannelAmounts) Total() decimal.Decimal {
	return sum(c.Facebook, c.Shopee, c.Lazada)
}

// Add returns the channel-wise sum of c and o.
func (c ChannelAmounts) Add(o ChannelAmounts) ChannelAmounts {
	return ChannelAmounts{
		Facebook: c.Facebook.Add(o.Facebook),
		Shopee:   c.Shopee.Add(o.Shopee),
		Lazada:   c.Lazada.Add(o.Lazada),
	}
}

// ExpenseAmounts holds one amount per expense type. Missing types are zero.
type ExpenseAmounts struct {
	Cost decimal.Decimal
	Ads  decimal.Decimal
	Fees decimal.Decimal
}

// ExpenseAmountsFrom densifies a sparse expense type map.
func ExpenseAmountsFrom(m map[domain.ExpenseType]decimal.Decimal) ExpenseAmounts {
	return ExpenseAmounts{
		Cost: amountOf(m, domain.ExpenseCost),
		Ads:  amountOf(m, domain.ExpenseAds),
		Fees: amountOf(m, domain.ExpenseFees),
	}
}

// Total is the sum of the three expense types.
func (e ExpenseAmounts) Total() decimal.Decimal {
	return sum(e.Cost, e.Ads, e.Fees)
}

// Add returns the type-wise sum of e and o.
func (e ExpenseAmounts) Add(o ExpenseAmounts) ExpenseAmounts {
	return ExpenseAmounts{
		Cost: e.Cost.Add(o.Cost),
		Ads:  e.Ads.Add(o.Ads),
		Fees: e.Fees.Add(o.Fees),
	}
}

func amountOf[K comparable](m map[K]decimal.Decimal, key K) decimal.Decimal {
	if v, ok := m[key]; ok {
		return v
	}
	return decimal.Zero
}

// Performance is the derived figure set shared by employees and branches.
type Performance struct {
	Targets     ChannelAmounts
	TotalTarget decimal.Decimal

	Sales      ChannelAmounts
	TotalSales decimal.Decimal

	Expenses      ExpenseAmounts
	TotalExpenses decimal.Decimal

	NetProfit      decimal.Decimal
	DiffFromTarget decimal.Decimal

	PerformancePct string
	CostPct        string
	AdsPct         string
	FeesPct        string
	TotalExpPct    string
}

// derive computes totals and percentages from the three raw inputs.
// Employees and branches both go through here, branches with summed inputs,
// so percentages are always taken from totals and never averaged.
func derive(targets, sales ChannelAmounts, expenses ExpenseAmounts) Performance {
	totalTarget := targets.Total()
	totalSales := sales.Total()
	totalExpenses := expenses.Total()

	return Performance{
		Targets:        targets,
		TotalTarget:    totalTarget,
		Sales:          sales,
		TotalSales:     totalSales,
		Expenses:       expenses,
		TotalExpenses:  totalExpenses,
		NetProfit:      totalSales.Sub(totalExpenses),
		DiffFromTarget: totalSales.Sub(totalTarget),
		PerformancePct: SafePercent(totalSales, totalTarget),
		CostPct:        SafePercent(expenses.Cost, totalSales),
		AdsPct:         SafePercent(expenses.Ads, totalSales),
		FeesPct:        SafePercent(expenses.Fees, totalSales),
		TotalExpPct:    SafePercent(totalExpenses, totalSales),
	}
}
