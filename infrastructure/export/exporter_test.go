package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var exportedAt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func records() []domain.SalesRecord {
	return []domain.SalesRecord{
		{
			ID:      "r1",
			Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Product: "Laptop Pro",
			Amount:  decimal.NewFromInt(1500),
		},
		{
			ID:      "r2",
			Date:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Product: "Monitor 4K",
			Amount:  decimal.RequireFromString("99.5"),
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		format      domain.ExportFormat
		filename    string
		contentType string
		wantErr     bool
	}{
		{"CSV", domain.ExportFormatCSV, "sales_report_20240315.csv", "text/csv", false},
		{"XLSX", domain.ExportFormatXLSX, "sales_report_20240315.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", false},
		{"Formato desconhecido", domain.ExportFormat("pdf"), "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := New(tt.format)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				assert.Nil(t, exporter)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.filename, exporter.Filename(exportedAt))
			assert.Equal(t, tt.contentType, exporter.ContentType())
		})
	}
}

func TestCSVExporter_Write(t *testing.T) {
	var buf bytes.Buffer

	err := csvExporter{}.Write(&buf, records())

	require.NoError(t, err)
	expected := "id,date,product,amount\n" +
		"r1,2024-01-01,Laptop Pro,1500.00\n" +
		"r2,2024-01-02,Monitor 4K,99.50\n"
	assert.Equal(t, expected, buf.String())
}

func TestCSVExporter_WriteEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, csvExporter{}.Write(&buf, nil))
	assert.Equal(t, "id,date,product,amount\n", buf.String())
}

func TestXLSXExporter_Write(t *testing.T) {
	var buf bytes.Buffer

	err := xlsxExporter{}.Write(&buf, records())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"r1", "2024-01-01", "Laptop Pro", "1500"}, rows[1])
	assert.Equal(t, []string{"r2", "2024-01-02", "Monitor 4K", "99.5"}, rows[2])
}
