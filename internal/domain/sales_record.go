// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product identifica um item da enumeração fixa de produtos.
type Product string

type SalesRecord struct {
	ID      string          `json:"id"`
	Date    time.Time       `json:"date"`
	Product Product         `json:"product"`
	Amount  decimal.Decimal `json:"amount"`
}

// Dataset é a tabela sintética completa gerada uma única vez por processo.
// Records está em ordem cronológica e nunca é alterado após a geração.
type Dataset struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Products    []Product     `json:"products"`
	Records     []SalesRecord `json:"-"`
}

// HasProduct indica se o produto pertence à enumeração do dataset.
func (d *Dataset) HasProduct(product Product) bool {
	for _, p := range d.Products {
		if p == product {
			return true
		}
	}
	return false
}

// FilterOptions alimenta os controles de filtro (multi-select e seletor de datas).
type FilterOptions struct {
	DatasetID   string    `json:"dataset_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Products    []Product `json:"products"`
	MinDate     string    `json:"min_date"`
	MaxDate     string    `json:"max_date"`
	Records     int       `json:"records"`
}
