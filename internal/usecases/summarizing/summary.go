package summarizing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// BaselinePeriod retorna o período imediatamente anterior com a mesma duração,
// terminando no dia anterior a start.
func BaselinePeriod(start, end time.Time) domain.Period {
	days := utils.DaysBetween(start, end)
	baselineEnd := utils.TruncateToDay(start).AddDate(0, 0, -1)

	return domain.Period{
		StartDate: baselineEnd.AddDate(0, 0, -(days - 1)),
		EndDate:   baselineEnd,
	}
}

// Totals são os agregados escalares de uma visão.
type Totals struct {
	Amount         decimal.Decimal
	ActiveProducts int
	Days           int
	Records        int
}

// AverageDaily é o total dividido pelos dias distintos presentes; zero sem dias.
func (t Totals) AverageDaily() decimal.Decimal {
	if t.Days == 0 {
		return decimal.Zero
	}
	return t.Amount.DivRound(decimal.NewFromInt(int64(t.Days)), 2)
}

// Aggregate reduz os registros a seus totais.
func Aggregate(records []domain.SalesRecord) Totals {
	total := decimal.Zero
	products := make(map[domain.Product]struct{})
	days := make(map[string]struct{})

	for _, record := range records {
		total = total.Add(record.Amount)
		products[record.Product] = struct{}{}
		days[record.Date.Format(time.DateOnly)] = struct{}{}
	}

	return Totals{
		Amount:         total,
		ActiveProducts: len(products),
		Days:           len(days),
		Records:        len(records),
	}
}

// Summarize calcula os indicadores da visão atual e as variações contra a base.
// Uma base nil é tratada como vazia.
func Summarize(current domain.FilteredView, baseline *domain.FilteredView, baselinePeriod *domain.Period) domain.MetricsSummary {
	currentTotals := Aggregate(current.Records)

	var baselineTotals Totals
	if baseline != nil {
		baselineTotals = Aggregate(baseline.Records)
	}

	return domain.MetricsSummary{
		TotalAmount:        currentTotals.Amount,
		ActiveProducts:     currentTotals.ActiveProducts,
		AverageDailyAmount: currentTotals.AverageDaily(),
		Records:            currentTotals.Records,
		Days:               currentTotals.Days,

		TotalAmountDelta:        utils.PercentChange(currentTotals.Amount, baselineTotals.Amount),
		ActiveProductsDelta:     currentTotals.ActiveProducts - baselineTotals.ActiveProducts,
		AverageDailyAmountDelta: utils.PercentChange(currentTotals.AverageDaily(), baselineTotals.AverageDaily()),

		Baseline: baselinePeriod,
	}
}
