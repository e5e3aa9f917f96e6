package dashboarding

import (
	"io"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/dashboarder.go -package=mocks

// Dashboarder executa uma interação completa do dashboard
type Dashboarder interface {
	// GetFilterOptions retorna os produtos e a janela de datas disponíveis
	GetFilterOptions() *domain.FilterOptions

	// GetDashboard filtra o dataset e calcula métricas e séries dos gráficos
	GetDashboard(criteria domain.FilterCriteria) (*domain.DashboardResponse, error)

	// GetRecords retorna uma página da tabela de detalhes da visão filtrada
	GetRecords(criteria domain.FilterCriteria, page domain.Page) (*domain.RecordsResponse, error)

	// Export grava a visão filtrada no formato solicitado e retorna a descrição do arquivo
	Export(criteria domain.FilterCriteria, format domain.ExportFormat, w io.Writer) (*ExportResult, error)
}

// ExportResult descreve o arquivo gerado
type ExportResult struct {
	Filename    string
	ContentType string
	Records     int
}
