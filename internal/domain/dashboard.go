package domain

// NoResultsMessage acompanha respostas sem registros correspondentes.
const NoResultsMessage = "no sales match the selected filters"

// AppliedFilters ecoa os critérios efetivamente usados, já com os padrões aplicados.
type AppliedFilters struct {
	Products  []Product `json:"products"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

type DashboardResponse struct {
	Filters        AppliedFilters    `json:"filters"`
	Metrics        MetricsSummary    `json:"metrics"`
	TimeSeries     []TimeSeriesPoint `json:"time_series"`
	CategorySeries []CategoryPoint   `json:"category_series"`
	ShareSeries    []SharePoint      `json:"share_series"`
	Message        string            `json:"message,omitempty"`
}

// Page controla a paginação da tabela de detalhes.
type Page struct {
	Limit  int
	Offset int
}

type RecordsResponse struct {
	Filters AppliedFilters `json:"filters"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	Records []SalesRecord  `json:"records"`
}

// ExportFormat identifica o formato do arquivo exportado.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)
