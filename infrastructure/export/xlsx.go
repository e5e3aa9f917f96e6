package export

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sales"

type xlsxExporter struct{}

func (xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxExporter) Filename(exportedAt time.Time) string {
	return filename(exportedAt, "xlsx")
}

func (xlsxExporter) Write(w io.Writer, records []domain.SalesRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	// A planilha padrão "Sheet1" é renomeada para manter um único sheet
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "export: error naming sheet")
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "export: error writing xlsx header")
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "export: error resolving cell")
		}

		amount, _ := record.Amount.Float64()
		values := []interface{}{
			record.ID,
			record.Date.Format(time.DateOnly),
			string(record.Product),
			amount,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.Wrap(err, "export: error writing xlsx row")
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "export: error writing xlsx file")
	}

	return nil
}
