package charting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// TimeSeries soma os valores por data, com um ponto por data presente na visão,
// em ordem cronológica. Datas sem vendas não são preenchidas com zero.
func TimeSeries(view domain.FilteredView) []domain.TimeSeriesPoint {
	totals := make(map[string]decimal.Decimal)
	for _, record := range view.Records {
		key := record.Date.Format(time.DateOnly)
		totals[key] = totals[key].Add(record.Amount)
	}

	points := make([]domain.TimeSeriesPoint, 0, len(totals))
	for date, amount := range totals {
		points = append(points, domain.TimeSeriesPoint{Date: date, Amount: amount})
	}

	// YYYY-MM-DD ordena lexicograficamente como cronologicamente
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// CategorySeries soma os valores por produto, do maior para o menor total.
// Empates são desfeitos pelo nome do produto em ordem crescente.
func CategorySeries(view domain.FilteredView) []domain.CategoryPoint {
	totals := make(map[domain.Product]decimal.Decimal)
	for _, record := range view.Records {
		totals[record.Product] = totals[record.Product].Add(record.Amount)
	}

	points := make([]domain.CategoryPoint, 0, len(totals))
	for product, amount := range totals {
		points = append(points, domain.CategoryPoint{Product: product, Amount: amount})
	}

	sort.Slice(points, func(i, j int) bool {
		if cmp := points[i].Amount.Cmp(points[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return points[i].Product < points[j].Product
	})

	return points
}

// ShareSeries converte a série por categoria em participação percentual do total.
func ShareSeries(categories []domain.CategoryPoint) []domain.SharePoint {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Amount)
	}

	points := make([]domain.SharePoint, 0, len(categories))
	for _, c := range categories {
		percent := 0.0
		if !total.IsZero() {
			percent, _ = c.Amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}

		points = append(points, domain.SharePoint{
			Product: c.Product,
			Amount:  c.Amount,
			Percent: utils.RoundWithTwoDecimalPlace(percent),
		})
	}

	return points
}
