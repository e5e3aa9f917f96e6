package domain

import "github.com/shopspring/decimal"

// MetricsSummary reúne os indicadores da visão filtrada e suas variações
// em relação ao período anterior de mesma duração.
type MetricsSummary struct {
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ActiveProducts     int             `json:"active_products"`
	AverageDailyAmount decimal.Decimal `json:"average_daily_amount"`
	Records            int             `json:"records"`
	Days               int             `json:"days"`

	// Variação percentual; nil quando o valor base é zero.
	TotalAmountDelta *float64 `json:"total_amount_delta"`
	// Variação absoluta.
	ActiveProductsDelta int `json:"active_products_delta"`
	// Variação percentual; nil quando o valor base é zero.
	AverageDailyAmountDelta *float64 `json:"average_daily_amount_delta"`

	Baseline *Period `json:"baseline,omitempty"`
}
