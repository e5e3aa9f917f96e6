// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetSource fornece o dataset em cache do processo.
type DatasetSource interface {
	Dataset() *domain.Dataset
}

type SalesRecordRepository interface {
	// GetDataset retorna o dataset completo, somente leitura
	GetDataset() *domain.Dataset
	// ListByDateRange retorna os registros com data no intervalo fechado [startDate, endDate]
	ListByDateRange(startDate, endDate time.Time) []domain.SalesRecord
	// GetFilterOptions retorna os valores disponíveis para os controles de filtro
	GetFilterOptions() *domain.FilterOptions
}

type salesRecordRepository struct {
	source DatasetSource
}

func NewSalesRecordRepository(source DatasetSource) SalesRecordRepository {
	return &salesRecordRepository{
		source: source,
	}
}

func (r *salesRecordRepository) GetDataset() *domain.Dataset {
	return r.source.Dataset()
}

func (r *salesRecordRepository) ListByDateRange(startDate, endDate time.Time) []domain.SalesRecord {
	records := r.source.Dataset().Records
	if startDate.After(endDate) || len(records) == 0 {
		return []domain.SalesRecord{}
	}

	// Os registros estão em ordem cronológica, então o intervalo é contíguo
	from := searchFirstOnOrAfter(records, startDate)
	to := searchFirstOnOrAfter(records, endDate.AddDate(0, 0, 1))

	return records[from:to:to]
}

func (r *salesRecordRepository) GetFilterOptions() *domain.FilterOptions {
	dataset := r.source.Dataset()

	return &domain.FilterOptions{
		DatasetID:   dataset.ID,
		GeneratedAt: dataset.GeneratedAt,
		Products:    dataset.Products,
		MinDate:     dataset.StartDate.Format(time.DateOnly),
		MaxDate:     dataset.EndDate.Format(time.DateOnly),
		Records:     len(dataset.Records),
	}
}

func searchFirstOnOrAfter(records []domain.SalesRecord, date time.Time) int {
	return sort.Search(len(records), func(i int) bool {
		return !records[i].Date.Before(date)
	})
}
