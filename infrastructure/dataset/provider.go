package dataset

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Provider guarda o dataset gerado de forma preguiçosa, com inicialização única.
// Depois de gerado ele é somente leitura, então não há necessidade de lock.
type Provider struct {
	params  Params
	once    sync.Once
	dataset *domain.Dataset
}

func NewProvider(params Params) *Provider {
	return &Provider{
		params: params.Normalize(),
	}
}

// Dataset retorna sempre a mesma instância, gerando-a na primeira chamada.
func (p *Provider) Dataset() *domain.Dataset {
	p.once.Do(func() {
		startTime := time.Now()
		p.dataset = Generate(p.params)

		logrus.WithFields(logrus.Fields{
			"dataset_id":  p.dataset.ID,
			"records":     len(p.dataset.Records),
			"start_date":  p.dataset.StartDate.Format(time.DateOnly),
			"end_date":    p.dataset.EndDate.Format(time.DateOnly),
			"products":    len(p.dataset.Products),
			"duration_ms": time.Since(startTime).Milliseconds(),
		}).Info("Dataset de vendas gerado")
	})

	return p.dataset
}
