package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func serve(service dashboarding.Dashboarder, target string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(Sales(service)...))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, body io.Reader) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(body).Decode(&apiErr))
	return apiErr
}

func TestGetDashboard(t *testing.T) {
	log.SetupTestLogger()
	decimal.MarshalJSONWithoutQuotes = true

	tests := []struct {
		name           string
		target         string
		setupMock      func(m *mocks.MockDashboarder)
		expectedStatus int
		validate       func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "Sucesso com produtos separados por vírgula e repetidos",
			target: "/v1/sales/dashboard?products=A,%20B&products=A&start_date=2024-01-01&end_date=2024-01-10",
			setupMock: func(m *mocks.MockDashboarder) {
				expected := domain.FilterCriteria{
					Products:  []domain.Product{"A", "B"},
					StartDate: date("2024-01-01"),
					EndDate:   date("2024-01-10"),
				}
				m.EXPECT().GetDashboard(expected).Return(&domain.DashboardResponse{
					Filters: domain.AppliedFilters{
						Products:  expected.Products,
						StartDate: "2024-01-01",
						EndDate:   "2024-01-10",
					},
					Metrics: domain.MetricsSummary{
						TotalAmount:    decimal.NewFromInt(1500),
						ActiveProducts: 2,
					},
					TimeSeries:     []domain.TimeSeriesPoint{},
					CategorySeries: []domain.CategoryPoint{},
					ShareSeries:    []domain.SharePoint{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				metrics := body["metrics"].(map[string]any)
				assert.Equal(t, 1500.0, metrics["total_amount"])
				assert.Equal(t, 2.0, metrics["active_products"])
				assert.Nil(t, metrics["total_amount_delta"])
				assert.NotContains(t, body, "message")
			},
		},
		{
			name:   "Sem parâmetros delega os padrões ao serviço",
			target: "/v1/sales/dashboard",
			setupMock: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(domain.FilterCriteria{}).Return(&domain.DashboardResponse{
					Message: domain.NoResultsMessage,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), domain.NoResultsMessage)
			},
		},
		{
			name:           "Data em formato inválido",
			target:         "/v1/sales/dashboard?start_date=01/01/2024",
			setupMock:      func(m *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				apiErr := decodeError(t, w.Body)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Contains(t, apiErr.Message, "start_date")
			},
		},
		{
			name:   "Critérios rejeitados pelo serviço",
			target: "/v1/sales/dashboard?products=Z",
			setupMock: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any()).Return(nil, dashboarding.NewDashboardError(
					dashboarding.ErrInvalidCriteria,
					apiErrors.ErrInvalidRequest,
					map[string]string{"products[0]": "product"},
				))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				apiErr := decodeError(t, w.Body)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Equal(t, dashboarding.ErrInvalidCriteria.Error(), apiErr.Message)
				assert.Equal(t, map[string]any{"products[0]": "product"}, apiErr.Details)
			},
		},
		{
			name:   "Erro inesperado",
			target: "/v1/sales/dashboard",
			setupMock: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetDashboard(gomock.Any()).Return(nil, io.ErrUnexpectedEOF)
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, w.Body).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockDashboarder(ctrl)
			tt.setupMock(mockService)

			w := serve(mockService, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validate(t, w)
		})
	}
}

func TestGetRecords(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		target         string
		setupMock      func(m *mocks.MockDashboarder)
		expectedStatus int
	}{
		{
			name:   "Paginação informada",
			target: "/v1/sales/records?limit=20&offset=40",
			setupMock: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetRecords(domain.FilterCriteria{}, domain.Page{Limit: 20, Offset: 40}).
					Return(&domain.RecordsResponse{Total: 100, Limit: 20, Offset: 40, Records: []domain.SalesRecord{}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Limite não numérico",
			target:         "/v1/sales/records?limit=abc",
			setupMock:      func(m *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Limite fora do intervalo",
			target: "/v1/sales/records?limit=5000",
			setupMock: func(m *mocks.MockDashboarder) {
				m.EXPECT().GetRecords(gomock.Any(), domain.Page{Limit: 5000}).Return(nil, dashboarding.NewDashboardError(
					dashboarding.ErrInvalidPage,
					apiErrors.ErrInvalidRequest,
					map[string]string{"limit": "range"},
				))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockDashboarder(ctrl)
			tt.setupMock(mockService)

			w := serve(mockService, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestExportSales(t *testing.T) {
	log.SetupTestLogger()

	t.Run("CSV por padrão com cabeçalhos de download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockDashboarder(ctrl)
		mockService.EXPECT().
			Export(gomock.Any(), domain.ExportFormatCSV, gomock.Any()).
			DoAndReturn(func(_ domain.FilterCriteria, _ domain.ExportFormat, w io.Writer) (*dashboarding.ExportResult, error) {
				_, err := io.WriteString(w, "id,date,product,amount\n")
				require.NoError(t, err)
				return &dashboarding.ExportResult{
					Filename:    "sales_report_20240201.csv",
					ContentType: "text/csv",
				}, nil
			})

		w := serve(mockService, "/v1/sales/export?products=A")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=sales_report_20240201.csv", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "id,date,product,amount\n", w.Body.String())
	})

	t.Run("Formato não suportado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockDashboarder(ctrl)
		mockService.EXPECT().
			Export(gomock.Any(), domain.ExportFormat("pdf"), gomock.Any()).
			Return(nil, dashboarding.NewDashboardError(dashboarding.ErrUnsupportedFormat, apiErrors.ErrInvalidRequest, "pdf"))

		w := serve(mockService, "/v1/sales/export?format=pdf")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	})
}

func TestGetFilterOptions(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboarder(ctrl)
	mockService.EXPECT().GetFilterOptions().Return(&domain.FilterOptions{
		DatasetID: "ab12CD",
		Products:  []domain.Product{"Tablet"},
		MinDate:   "2024-01-01",
		MaxDate:   "2024-06-28",
		Records:   3500,
	})

	w := serve(mockService, "/v1/sales/options")

	require.Equal(t, http.StatusOK, w.Code)
	var options domain.FilterOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Equal(t, []domain.Product{"Tablet"}, options.Products)
	assert.Equal(t, "2024-06-28", options.MaxDate)
}

func TestRouter_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := serve(mocks.NewMockDashboarder(ctrl), "/v1/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, w.Body).Code)
}
