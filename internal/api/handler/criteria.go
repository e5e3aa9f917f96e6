package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// paramError indica um parâmetro de consulta mal formado.
type paramError struct {
	code  string
	param string
	err   error
}

func (e *paramError) Error() string {
	return e.param + ": " + e.err.Error()
}

// parseCriteria lê products (lista separada por vírgula e/ou repetida),
// start_date e end_date. Datas ausentes ficam nil e recebem a janela do dataset.
func parseCriteria(query url.Values) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{}

	seen := make(map[domain.Product]bool)
	for _, value := range query["products"] {
		for _, name := range strings.Split(value, ",") {
			product := domain.Product(strings.TrimSpace(name))
			if product == "" || seen[product] {
				continue
			}
			seen[product] = true
			criteria.Products = append(criteria.Products, product)
		}
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return criteria, &paramError{code: apiErrors.ErrInvalidFormat, param: "start_date", err: err}
	}
	criteria.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return criteria, &paramError{code: apiErrors.ErrInvalidFormat, param: "end_date", err: err}
	}
	criteria.EndDate = endDate

	return criteria, nil
}

func parsePage(query url.Values) (domain.Page, error) {
	page := domain.Page{}

	for _, param := range []string{"limit", "offset"} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil {
			return page, &paramError{code: apiErrors.ErrInvalidRequest, param: param, err: err}
		}

		if param == "limit" {
			page.Limit = value
		} else {
			page.Offset = value
		}
	}

	return page, nil
}

// writeError converte erros de parâmetros e do caso de uso em respostas padronizadas.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var paramErr *paramError
	if errors.As(err, &paramErr) {
		logger.WithFields(log.Fields{
			"param": paramErr.param,
			"error": err.Error(),
		}).Warn("sales: invalid query parameter")

		apiErrors.WriteError(w, paramErr.code, paramErr.Error(), nil)
		return
	}

	var dashboardErr *dashboarding.DashboardError
	if errors.As(err, &dashboardErr) {
		logger.WithFields(log.Fields{
			"code":  dashboardErr.Code,
			"error": err.Error(),
		}).Warn("sales: request rejected")

		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Err.Error(), dashboardErr.Details)
		return
	}

	logger.WithError(err).Error("sales: unexpected error")
	apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("sales: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
