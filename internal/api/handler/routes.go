package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/sales/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
		{
			Path:    "/v1/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSales(service),
		},
	}
}
