package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/inquiry-desk/internal/inquiry"
	"github.com/noah-isme/inquiry-desk/internal/models"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
	"github.com/noah-isme/inquiry-desk/pkg/export"
)

const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var inquiryColumns = []string{"created_at", "name", "email", "program", "campus", "credit_type", "message"}

var inquiryLabels = map[string]string{
	"created_at":  "Created At",
	"name":        "Name",
	"email":       "Email",
	"program":     "Program",
	"campus":      "Campus",
	"credit_type": "Credit Type",
	"message":     "Message",
}

type inquirySource interface {
	Filtered(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(report export.Report) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	Title string
}

// ExportRequest selects the format and the listing filter.
type ExportRequest struct {
	Format string `validate:"required,oneof=csv pdf"`
	Filter models.InquiryFilter
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the filtered inquiry list for download.
type ExportService struct {
	source    inquirySource
	csv       csvRenderer
	pdf       pdfRenderer
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportConfig
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(source inquirySource, validate *validator.Validate, logger *zap.Logger, cfg ExportConfig, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.Title == "" {
		cfg.Title = "Inquiries"
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{source: source, csv: csv, pdf: pdf, validator: validate, logger: logger, cfg: cfg, now: time.Now}
}

// Export renders the inquiries matching req.Filter.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (*ExportFile, error) {
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be csv or pdf")
	}

	items, err := s.source.Filtered(ctx, req.Filter)
	if err != nil {
		return nil, err
	}
	dataset := buildInquiryDataset(items)
	stamp := s.now().UTC().Format("20060102-150405")

	var (
		file ExportFile
		data []byte
	)
	switch req.Format {
	case ExportFormatCSV:
		data, err = s.csv.Render(dataset)
		file = ExportFile{Filename: fmt.Sprintf("inquiries-%s.csv", stamp), ContentType: "text/csv; charset=utf-8"}
	case ExportFormatPDF:
		data, err = s.pdf.Render(export.Report{
			Title:  s.title(req.Filter),
			Charts: buildCampusCharts(items),
			Table:  dataset,
		})
		file = ExportFile{Filename: fmt.Sprintf("inquiries-%s.pdf", stamp), ContentType: "application/pdf"}
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.String("format", req.Format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	file.Data = data
	s.logger.Info("rendered inquiry export", zap.String("format", req.Format), zap.Int("rows", len(items)))
	return &file, nil
}

func (s *ExportService) title(filter models.InquiryFilter) string {
	parts := []string{s.cfg.Title}
	for _, v := range []string{filter.Campus, filter.Program, string(filter.CreditType)} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " - ")
}

func buildInquiryDataset(items []models.Inquiry) export.Dataset {
	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		created := ""
		if !item.CreatedAt.IsZero() {
			created = item.CreatedAt.UTC().Format(time.RFC3339)
		}
		rows = append(rows, map[string]string{
			"created_at":  created,
			"name":        item.Name,
			"email":       item.Email,
			"program":     item.Program,
			"campus":      item.Campus,
			"credit_type": string(item.CreditType),
			"message":     item.Message,
		})
	}
	return export.Dataset{Columns: inquiryColumns, Labels: inquiryLabels, Rows: rows}
}

func buildCampusCharts(items []models.Inquiry) []export.BarChart {
	summaries := inquiry.Breakdown(items)
	charts := make([]export.BarChart, 0, len(summaries))
	for _, summary := range summaries {
		chart := export.BarChart{Title: fmt.Sprintf("%s (%d)", summary.Campus, summary.Total)}
		for _, p := range summary.Programs {
			chart.Bars = append(chart.Bars, export.Bar{Label: p.Program, Value: p.Count})
		}
		charts = append(charts, chart)
	}
	return charts
}
