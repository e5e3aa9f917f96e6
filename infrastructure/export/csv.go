package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type csvExporter struct{}

func (csvExporter) ContentType() string {
	return "text/csv"
}

func (csvExporter) Filename(exportedAt time.Time) string {
	return filename(exportedAt, "csv")
}

func (csvExporter) Write(w io.Writer, records []domain.SalesRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "export: error writing csv header")
	}

	for _, record := range records {
		if err := writer.Write(row(record)); err != nil {
			return errors.Wrap(err, "export: error writing csv row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "export: error flushing csv")
}
