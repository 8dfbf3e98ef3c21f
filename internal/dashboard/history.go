package dashboard

import (
	"github.com/sales-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

// HistoryWindow is the number of months in a history sequence.
const HistoryWindow = 12

// PeriodSummary is the company-wide figure set of one month.
type PeriodSummary struct {
	Period        domain.Period
	Sales         ChannelAmounts
	TotalSales    decimal.Decimal
	TotalTarget   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
}

// TrailingPeriods returns the n months ending at end, oldest first.
func TrailingPeriods(end domain.Period, n int) []domain.Period {
	if n <= 0 {
		return nil
	}
	periods := make([]domain.Period, n)
	p := end
	for i := n - 1; i >= 0; i-- {
		periods[i] = p
		p = p.Prev()
	}
	return periods
}

// SummarizePeriod builds the company-wide summary of one month from the
// sales per channel across all employees, the summed targets and the
// summed expenses of every type.
func SummarizePeriod(p domain.Period, sales map[domain.Channel]decimal.Decimal, totalTarget, totalExpenses decimal.Decimal) PeriodSummary {
	channels := ChannelAmountsFrom(sales)
	totalSales := channels.Total()

	return PeriodSummary{
		Period:        p,
		Sales:         channels,
		TotalSales:    totalSales,
		TotalTarget:   totalTarget,
		TotalExpenses: totalExpenses,
		NetProfit:     totalSales.Sub(totalExpenses),
	}
}
