// Package dataset gera a tabela sintética de vendas que simula a leitura de um banco de dados.
package dataset

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DefaultSeed            = 42
	DefaultDays            = 180
	DefaultMinTransactions = 10
	DefaultMaxTransactions = 29
	DefaultMinAmount       = 50
	DefaultMaxAmount       = 4999
)

var DefaultProducts = []domain.Product{
	"Laptop Pro",
	"Monitor 4K",
	"Tablet",
	"Bluetooth Headphones",
	"Wireless Charger",
}

// Params são os parâmetros fixos da geração.
type Params struct {
	Seed            int64
	Days            int
	EndDate         time.Time
	Products        []domain.Product
	MinTransactions int
	MaxTransactions int
	MinAmount       int
	MaxAmount       int
}

// ParamsFromConfig converte a configuração de inicialização. Uma data final
// vazia ou inválida usa o dia de inicialização do processo.
func ParamsFromConfig(cfg config.Dataset) Params {
	params := Params{
		Seed:            cfg.Seed,
		Days:            cfg.Days,
		MinTransactions: cfg.MinTransactions,
		MaxTransactions: cfg.MaxTransactions,
		MinAmount:       cfg.MinAmount,
		MaxAmount:       cfg.MaxAmount,
	}

	for _, name := range cfg.Products {
		if name != "" {
			params.Products = append(params.Products, domain.Product(name))
		}
	}

	endDate, err := utils.ParseDate(cfg.EndDate)
	if err != nil {
		logrus.WithError(err).WithField("dataset_end_date", cfg.EndDate).Warn("Data final do dataset inválida, usando a data atual")
	}
	if endDate != nil {
		params.EndDate = *endDate
	}

	return params.Normalize()
}

// Normalize aplica os valores padrão aos campos zerados e corrige intervalos invertidos.
func (p Params) Normalize() Params {
	if p.Seed == 0 {
		p.Seed = DefaultSeed
	}
	if p.Days <= 0 {
		p.Days = DefaultDays
	}
	if p.EndDate.IsZero() {
		p.EndDate = time.Now()
	}
	p.EndDate = utils.TruncateToDay(p.EndDate)

	if len(p.Products) == 0 {
		p.Products = append([]domain.Product(nil), DefaultProducts...)
	}

	if p.MinTransactions <= 0 {
		p.MinTransactions = DefaultMinTransactions
	}
	if p.MaxTransactions <= 0 {
		p.MaxTransactions = DefaultMaxTransactions
	}
	if p.MinTransactions > p.MaxTransactions {
		p.MinTransactions, p.MaxTransactions = p.MaxTransactions, p.MinTransactions
	}

	if p.MinAmount <= 0 {
		p.MinAmount = DefaultMinAmount
	}
	if p.MaxAmount <= 0 {
		p.MaxAmount = DefaultMaxAmount
	}
	if p.MinAmount > p.MaxAmount {
		p.MinAmount, p.MaxAmount = p.MaxAmount, p.MinAmount
	}

	return p
}

// StartDate é o primeiro dia da janela histórica.
func (p Params) StartDate() time.Time {
	return p.EndDate.AddDate(0, 0, -(p.Days - 1))
}

// Generate produz o dataset sintético. Parâmetros idênticos produzem
// exatamente os mesmos registros, incluindo os IDs.
func Generate(params Params) *domain.Dataset {
	params = params.Normalize()

	rng := rand.New(rand.NewSource(params.Seed))
	startDate := params.StartDate()

	records := make([]domain.SalesRecord, 0, params.Days*params.MaxTransactions)
	for day := 0; day < params.Days; day++ {
		date := startDate.AddDate(0, 0, day)

		transactions := params.MinTransactions + rng.Intn(params.MaxTransactions-params.MinTransactions+1)
		for i := 0; i < transactions; i++ {
			product := params.Products[rng.Intn(len(params.Products))]
			amount := params.MinAmount + rng.Intn(params.MaxAmount-params.MinAmount+1)

			id, err := uuid.NewRandomFromReader(rng)
			if err != nil {
				// rand.Rand.Read nunca retorna erro
				panic(err)
			}

			records = append(records, domain.SalesRecord{
				ID:      id.String(),
				Date:    date,
				Product: product,
				Amount:  decimal.NewFromInt(int64(amount)),
			})
		}
	}

	datasetID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID do dataset")
	}

	return &domain.Dataset{
		ID:          datasetID,
		GeneratedAt: time.Now(),
		StartDate:   startDate,
		EndDate:     params.EndDate,
		Products:    append([]domain.Product(nil), params.Products...),
		Records:     records,
	}
}
