package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCriteria   = errors.New("invalid filter criteria")
	ErrInvalidPage       = errors.New("invalid page")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("error exporting sales")
)

// DashboardError é um erro com o código de API e os detalhes de validação
type DashboardError struct {
	Err     error
	Code    string
	Details any
}

func (e *DashboardError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details any) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
