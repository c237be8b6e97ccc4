package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset defines tabular export content. Rows are keyed by column; Labels optionally
// renames columns in the rendered header.
type Dataset struct {
	Columns []string
	Labels  map[string]string
	Rows    []map[string]string
}

// Header returns the display header for each column.
func (d Dataset) Header() []string {
	header := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		if label, ok := d.Labels[col]; ok && label != "" {
			header[i] = label
			continue
		}
		header[i] = col
	}
	return header
}

// Record flattens row i in column order.
func (d Dataset) Record(i int) []string {
	record := make([]string, len(d.Columns))
	for j, col := range d.Columns {
		record[j] = d.Rows[i][col]
	}
	return record
}

// CSVExporter renders Dataset records into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Header()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range data.Rows {
		if err := writer.Write(data.Record(i)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
