package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetFilterOptions retorna os produtos e a janela de datas para os controles de filtro
func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		options := service.GetFilterOptions()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"dataset_id": options.DatasetID,
			"products":   len(options.Products),
		}).Debug("sales: filter options served")

		writeJSON(w, r, options)
	})
}

// GetDashboard retorna métricas, deltas e séries dos gráficos para os filtros informados
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := parseCriteria(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}

		dashboard, err := service.GetDashboard(criteria)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": dashboard.Filters.StartDate,
			"end_date":   dashboard.Filters.EndDate,
			"records":    dashboard.Metrics.Records,
		}).Info("sales: dashboard computed")

		writeJSON(w, r, dashboard)
	})
}

// GetRecords retorna uma página da tabela de detalhes
func GetRecords(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		criteria, err := parseCriteria(query)
		if err != nil {
			writeError(w, r, err)
			return
		}

		page, err := parsePage(query)
		if err != nil {
			writeError(w, r, err)
			return
		}

		records, err := service.GetRecords(criteria, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, records)
	})
}

// ExportSales devolve a visão filtrada como arquivo CSV ou XLSX
func ExportSales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := parseCriteria(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}

		format := domain.ExportFormat(r.URL.Query().Get("format"))
		if format == "" {
			format = domain.ExportFormatCSV
		}

		// O arquivo é gerado em memória para que erros ainda possam virar JSON
		var buffer bytes.Buffer
		result, err := service.Export(criteria, format, &buffer)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"format":   format,
			"filename": result.Filename,
			"records":  result.Records,
		}).Info("sales: export generated")

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
		if _, err := buffer.WriteTo(w); err != nil {
			logger.WithError(err).Error("sales: failed to write export")
		}
	})
}
