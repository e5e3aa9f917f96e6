package filtering

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Filter retorna os registros cujo produto está na seleção (ou qualquer produto,
// se a seleção estiver vazia) e cuja data está no intervalo fechado dos critérios.
// A ordem do dataset é preservada e a entrada nunca é alterada.
func Filter(records []domain.SalesRecord, criteria domain.FilterCriteria) domain.FilteredView {
	view := domain.FilteredView{
		Criteria: criteria,
		Records:  make([]domain.SalesRecord, 0),
	}

	if criteria.StartDate != nil && criteria.EndDate != nil && criteria.StartDate.After(*criteria.EndDate) {
		return view
	}

	for _, record := range records {
		if criteria.MatchesProduct(record.Product) && criteria.MatchesDate(record.Date) {
			view.Records = append(view.Records, record)
		}
	}

	return view
}
