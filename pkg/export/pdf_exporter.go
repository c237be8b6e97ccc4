package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth     = 277.0 // A4 landscape minus margins
	labelWidth    = 70.0
	countWidth    = 14.0
	barMaxWidth   = pageWidth - labelWidth - countWidth
	barHeight     = 6.0
	barGap        = 2.0
	tableFontSize = 8
)

// Bar is one labelled value in a chart.
type Bar struct {
	Label string
	Value int
}

// BarChart is a titled horizontal bar chart.
type BarChart struct {
	Title string
	Bars  []Bar
}

// Report is everything a PDF export draws: a title, charts then the table.
type Report struct {
	Title  string
	Charts []BarChart
	Table  Dataset
}

// ScaleBars maps values to widths in [0, maxWidth] relative to the largest value.
func ScaleBars(bars []Bar, maxWidth float64) []float64 {
	peak := 1
	for _, b := range bars {
		if b.Value > peak {
			peak = b.Value
		}
	}
	widths := make([]float64, len(bars))
	for i, b := range bars {
		if b.Value <= 0 {
			continue
		}
		widths[i] = math.Round(float64(b.Value) / float64(peak) * maxWidth)
	}
	return widths
}

// PDFExporter renders reports into a landscape PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render draws the report and returns the encoded document.
func (e *PDFExporter) Render(report Report) ([]byte, error) {
	if len(report.Table.Columns) == 0 {
		return nil, fmt.Errorf("pdf requires at least one column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if report.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(report.Title), "", 1, "C", false, 0, "")
		pdf.Ln(3)
	}

	for _, chart := range report.Charts {
		drawChart(pdf, tr, chart)
	}

	pdf.SetFont("Arial", "B", tableFontSize+1)
	colWidth := pageWidth / float64(len(report.Table.Columns))
	for _, header := range report.Table.Header() {
		pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", tableFontSize)
	for i := range report.Table.Rows {
		for _, value := range report.Table.Record(i) {
			pdf.CellFormat(colWidth, 6, tr(truncate(pdf, value, colWidth-2)), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawChart(pdf *gofpdf.Fpdf, tr func(string) string, chart BarChart) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, tr(chart.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(0, 122, 204)
	widths := ScaleBars(chart.Bars, barMaxWidth)
	for i, bar := range chart.Bars {
		x, y := pdf.GetXY()
		pdf.CellFormat(labelWidth, barHeight, tr(bar.Label), "", 0, "L", false, 0, "")
		if widths[i] > 0 {
			pdf.Rect(x+labelWidth, y+1, widths[i], barHeight-2, "F")
		}
		pdf.SetXY(x+labelWidth+widths[i]+1, y)
		pdf.CellFormat(countWidth, barHeight, fmt.Sprintf("%d", bar.Value), "", 0, "L", false, 0, "")
		pdf.SetXY(x, y+barHeight+barGap)
	}
	pdf.Ln(4)
}

func truncate(pdf *gofpdf.Fpdf, value string, width float64) string {
	if pdf.GetStringWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
