// Package export grava a visão filtrada em arquivos para download.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

var header = []string{"id", "date", "product", "amount"}

type Exporter interface {
	// ContentType retorna o MIME type do arquivo gerado
	ContentType() string
	// Filename retorna o nome do arquivo para a data de exportação informada
	Filename(exportedAt time.Time) string
	// Write grava os registros no writer
	Write(w io.Writer, records []domain.SalesRecord) error
}

// New retorna o exportador do formato solicitado.
func New(format domain.ExportFormat) (Exporter, error) {
	switch format {
	case domain.ExportFormatCSV:
		return csvExporter{}, nil
	case domain.ExportFormatXLSX:
		return xlsxExporter{}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
}

func filename(exportedAt time.Time, ext string) string {
	return fmt.Sprintf("sales_report_%s.%s", exportedAt.Format("20060102"), ext)
}

func row(record domain.SalesRecord) []string {
	return []string{
		record.ID,
		record.Date.Format(time.DateOnly),
		string(record.Product),
		record.Amount.StringFixed(2),
	}
}
