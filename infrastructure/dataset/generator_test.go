package dataset

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var endDate = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	params := Params{Seed: 7, Days: 30, EndDate: endDate}

	first := Generate(params)
	second := Generate(params)

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.StartDate, second.StartDate)

	other := Generate(Params{Seed: 8, Days: 30, EndDate: endDate})
	assert.NotEqual(t, first.Records, other.Records)
}

func TestGenerate_Invariants(t *testing.T) {
	params := Params{
		Seed:            42,
		Days:            60,
		EndDate:         endDate,
		Products:        []domain.Product{"A", "B", "C"},
		MinTransactions: 3,
		MaxTransactions: 6,
		MinAmount:       10,
		MaxAmount:       20,
	}

	ds := Generate(params)

	require.NotEmpty(t, ds.Records)
	assert.NotEmpty(t, ds.ID)
	assert.Equal(t, endDate, ds.EndDate)
	assert.Equal(t, endDate.AddDate(0, 0, -59), ds.StartDate)
	assert.Equal(t, params.Products, ds.Products)

	ids := make(map[string]bool, len(ds.Records))
	perDay := make(map[time.Time]int)
	for i, r := range ds.Records {
		assert.False(t, ids[r.ID], "ID duplicado: %s", r.ID)
		ids[r.ID] = true

		assert.True(t, ds.HasProduct(r.Product), "produto fora da enumeração: %s", r.Product)
		assert.False(t, r.Date.Before(ds.StartDate) || r.Date.After(ds.EndDate))
		assert.True(t, r.Amount.GreaterThanOrEqual(decimal.NewFromInt(10)))
		assert.True(t, r.Amount.LessThanOrEqual(decimal.NewFromInt(20)))

		if i > 0 {
			assert.False(t, r.Date.Before(ds.Records[i-1].Date), "registros fora de ordem cronológica")
		}
		perDay[r.Date]++
	}

	assert.Len(t, perDay, 60)
	for day, count := range perDay {
		assert.GreaterOrEqual(t, count, 3, day)
		assert.LessOrEqual(t, count, 6, day)
	}
}

func TestParams_Normalize(t *testing.T) {
	p := Params{
		EndDate:         time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC),
		MinTransactions: 9,
		MaxTransactions: 2,
		MinAmount:       500,
		MaxAmount:       100,
	}.Normalize()

	assert.Equal(t, int64(DefaultSeed), p.Seed)
	assert.Equal(t, DefaultDays, p.Days)
	assert.Equal(t, endDate, p.EndDate)
	assert.Equal(t, DefaultProducts, p.Products)
	assert.Equal(t, 2, p.MinTransactions)
	assert.Equal(t, 9, p.MaxTransactions)
	assert.Equal(t, 100, p.MinAmount)
	assert.Equal(t, 500, p.MaxAmount)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), p.StartDate())
}

func TestParamsFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Dataset
		validate func(t *testing.T, p Params)
	}{
		{
			name: "Valores explícitos",
			cfg: config.Dataset{
				Seed:     99,
				Days:     10,
				EndDate:  "2024-06-30",
				Products: []string{"A", "", "B"},
			},
			validate: func(t *testing.T, p Params) {
				assert.Equal(t, int64(99), p.Seed)
				assert.Equal(t, 10, p.Days)
				assert.Equal(t, endDate, p.EndDate)
				assert.Equal(t, []domain.Product{"A", "B"}, p.Products)
			},
		},
		{
			name: "Data final inválida usa o dia atual",
			cfg:  config.Dataset{EndDate: "30/06/2024"},
			validate: func(t *testing.T, p Params) {
				now := time.Now()
				assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), p.EndDate)
				assert.Equal(t, DefaultProducts, p.Products)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParamsFromConfig(tt.cfg))
		})
	}
}
