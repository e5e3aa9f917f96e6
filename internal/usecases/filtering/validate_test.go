package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator([]domain.Product{"A", "B"})

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		fields   map[string]string
	}{
		{
			name: "Critérios válidos",
			criteria: domain.FilterCriteria{
				Products:  []domain.Product{"A"},
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-10"),
			},
		},
		{
			name: "Mesmo dia no início e no fim",
			criteria: domain.FilterCriteria{
				StartDate: date("2024-01-05"),
				EndDate:   date("2024-01-05"),
			},
		},
		{
			name: "Data final anterior à inicial",
			criteria: domain.FilterCriteria{
				StartDate: date("2024-01-10"),
				EndDate:   date("2024-01-01"),
			},
			fields: map[string]string{"end_date": "gtefield"},
		},
		{
			name: "Produto fora da enumeração",
			criteria: domain.FilterCriteria{
				Products:  []domain.Product{"A", "Z"},
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-10"),
			},
			fields: map[string]string{"products[1]": "product"},
		},
		{
			name:     "Datas ausentes",
			criteria: domain.FilterCriteria{},
			fields:   map[string]string{"start_date": "required", "end_date": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.criteria)

			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var criteriaErr *CriteriaError
			require.ErrorAs(t, err, &criteriaErr)
			assert.Equal(t, tt.fields, criteriaErr.Fields)
			assert.Contains(t, criteriaErr.Error(), "invalid filter criteria")
		})
	}
}
