package domain

import "github.com/shopspring/decimal"

// TimeSeriesPoint é o total vendido em uma data (YYYY-MM-DD).
type TimeSeriesPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryPoint é o total vendido de um produto.
type CategoryPoint struct {
	Product Product         `json:"product"`
	Amount  decimal.Decimal `json:"amount"`
}

// SharePoint é a participação percentual de um produto no total.
type SharePoint struct {
	Product Product         `json:"product"`
	Amount  decimal.Decimal `json:"amount"`
	Percent float64         `json:"percent"`
}
