package dashboarding

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/export"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Service recalcula visão, métricas e séries a cada interação, sem guardar estado.
type Service struct {
	salesRepository repository.SalesRecordRepository
	validator       *filtering.Validator
	now             func() time.Time
}

func NewService(salesRepository repository.SalesRecordRepository) Dashboarder {
	return newService(salesRepository, time.Now)
}

func newService(salesRepository repository.SalesRecordRepository, now func() time.Time) *Service {
	return &Service{
		salesRepository: salesRepository,
		validator:       filtering.NewValidator(salesRepository.GetDataset().Products),
		now:             now,
	}
}

func (s *Service) GetFilterOptions() *domain.FilterOptions {
	return s.salesRepository.GetFilterOptions()
}

func (s *Service) GetDashboard(criteria domain.FilterCriteria) (*domain.DashboardResponse, error) {
	criteria, err := s.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	current := s.filter(criteria)

	baselinePeriod := summarizing.BaselinePeriod(*criteria.StartDate, *criteria.EndDate)
	baselineCriteria := domain.FilterCriteria{
		Products:  criteria.Products,
		StartDate: &baselinePeriod.StartDate,
		EndDate:   &baselinePeriod.EndDate,
	}
	baseline := s.filter(baselineCriteria)

	categories := charting.CategorySeries(current)

	response := &domain.DashboardResponse{
		Filters:        appliedFilters(criteria),
		Metrics:        summarizing.Summarize(current, &baseline, &baselinePeriod),
		TimeSeries:     charting.TimeSeries(current),
		CategorySeries: categories,
		ShareSeries:    charting.ShareSeries(categories),
	}

	if current.IsEmpty() {
		response.Message = domain.NoResultsMessage
	}

	logrus.WithFields(logrus.Fields{
		"products":         len(criteria.Products),
		"start_date":       criteria.StartDate.Format(time.DateOnly),
		"end_date":         criteria.EndDate.Format(time.DateOnly),
		"records":          current.Len(),
		"baseline_records": baseline.Len(),
	}).Debug("dashboard: recalculado")

	return response, nil
}

func (s *Service) GetRecords(criteria domain.FilterCriteria, page domain.Page) (*domain.RecordsResponse, error) {
	criteria, err := s.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	page, err = resolvePage(page)
	if err != nil {
		return nil, err
	}

	view := s.filter(criteria)

	from := min(page.Offset, view.Len())
	to := min(from+page.Limit, view.Len())

	return &domain.RecordsResponse{
		Filters: appliedFilters(criteria),
		Total:   view.Len(),
		Limit:   page.Limit,
		Offset:  page.Offset,
		Records: view.Records[from:to],
	}, nil
}

func (s *Service) Export(criteria domain.FilterCriteria, format domain.ExportFormat, w io.Writer) (*ExportResult, error) {
	criteria, err := s.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	exporter, err := export.New(format)
	if err != nil {
		return nil, NewDashboardError(ErrUnsupportedFormat, apiErrors.ErrInvalidRequest, string(format))
	}

	view := s.filter(criteria)

	if err := exporter.Write(w, view.Records); err != nil {
		logrus.WithError(err).WithField("format", format).Error("dashboard: erro ao exportar vendas")
		return nil, NewDashboardError(ErrExportFailed, apiErrors.ErrExportFailed, nil)
	}

	return &ExportResult{
		Filename:    exporter.Filename(s.now()),
		ContentType: exporter.ContentType(),
		Records:     view.Len(),
	}, nil
}

// filter restringe primeiro pelo intervalo de datas no repositório e depois
// aplica o predicado completo.
func (s *Service) filter(criteria domain.FilterCriteria) domain.FilteredView {
	records := s.salesRepository.ListByDateRange(*criteria.StartDate, *criteria.EndDate)
	return filtering.Filter(records, criteria)
}

// resolveCriteria aplica a janela do dataset às datas ausentes e valida o resultado.
func (s *Service) resolveCriteria(criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
	dataset := s.salesRepository.GetDataset()

	startDate := dataset.StartDate
	if criteria.StartDate != nil {
		startDate = utils.TruncateToDay(*criteria.StartDate)
	}

	endDate := dataset.EndDate
	if criteria.EndDate != nil {
		endDate = utils.TruncateToDay(*criteria.EndDate)
	}

	resolved := domain.FilterCriteria{
		Products:  criteria.Products,
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	if err := s.validator.Validate(resolved); err != nil {
		if criteriaErr, ok := err.(*filtering.CriteriaError); ok {
			return resolved, NewDashboardError(ErrInvalidCriteria, criteriaCode(criteriaErr), criteriaErr.Fields)
		}
		return resolved, NewDashboardError(ErrInvalidCriteria, apiErrors.ErrInvalidRequest, err.Error())
	}

	return resolved, nil
}

// criteriaCode separa erros de intervalo de datas (formato) de produtos desconhecidos.
func criteriaCode(err *filtering.CriteriaError) string {
	for field := range err.Fields {
		if field == "start_date" || field == "end_date" {
			return apiErrors.ErrInvalidFormat
		}
	}
	return apiErrors.ErrInvalidRequest
}

func resolvePage(page domain.Page) (domain.Page, error) {
	if page.Limit == 0 {
		page.Limit = DefaultPageLimit
	}

	if page.Limit < 0 || page.Limit > MaxPageLimit {
		return page, NewDashboardError(ErrInvalidPage, apiErrors.ErrInvalidRequest, map[string]string{"limit": "range"})
	}

	if page.Offset < 0 {
		return page, NewDashboardError(ErrInvalidPage, apiErrors.ErrInvalidRequest, map[string]string{"offset": "min"})
	}

	return page, nil
}

func appliedFilters(criteria domain.FilterCriteria) domain.AppliedFilters {
	products := criteria.Products
	if products == nil {
		products = []domain.Product{}
	}

	return domain.AppliedFilters{
		Products:  products,
		StartDate: criteria.StartDate.Format(time.DateOnly),
		EndDate:   criteria.EndDate.Format(time.DateOnly),
	}
}
