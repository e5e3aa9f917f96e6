package domain

import (
	"time"
)

// FilterCriteria são as restrições escolhidas pelo usuário em uma interação.
// Products vazio significa "todos os produtos", não "nenhum".
type FilterCriteria struct {
	Products  []Product  `json:"products" validate:"dive,product"`
	StartDate *time.Time `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

// MatchesProduct aplica a convenção de conjunto vazio como curinga.
func (c *FilterCriteria) MatchesProduct(product Product) bool {
	if len(c.Products) == 0 {
		return true
	}
	for _, p := range c.Products {
		if p == product {
			return true
		}
	}
	return false
}

// MatchesDate verifica o intervalo fechado [StartDate, EndDate].
func (c *FilterCriteria) MatchesDate(date time.Time) bool {
	if c.StartDate != nil && date.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && date.After(*c.EndDate) {
		return false
	}
	return true
}

// FilteredView é o subconjunto do Dataset que satisfaz os critérios.
type FilteredView struct {
	Criteria FilterCriteria
	Records  []SalesRecord
}

func (v FilteredView) Len() int {
	return len(v.Records)
}

func (v FilteredView) IsEmpty() bool {
	return len(v.Records) == 0
}

// Period é um intervalo fechado de datas de calendário.
type Period struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
