package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/inquiry-desk/internal/dto"
	"github.com/noah-isme/inquiry-desk/internal/middleware"
	"github.com/noah-isme/inquiry-desk/internal/models"
	"github.com/noah-isme/inquiry-desk/internal/service"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
	"github.com/noah-isme/inquiry-desk/pkg/response"
)

type inquiryService interface {
	Record(ctx context.Context, req dto.InquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context, filter models.InquiryFilter) (*dto.InquiryListResponse, error)
	Breakdown(ctx context.Context, filter models.InquiryFilter) (*dto.BreakdownResponse, error)
	CampusEmails(ctx context.Context, filter models.InquiryFilter, campus string) (*dto.CampusEmailsResponse, string, error)
	ClearAll(ctx context.Context) error
}

type exportService interface {
	Export(ctx context.Context, req service.ExportRequest) (*service.ExportFile, error)
}

// InquiryHandler serves the inquiries screen.
type InquiryHandler struct {
	service      inquiryService
	exports      exportService
	dismissAfter time.Duration
}

// NewInquiryHandler constructs the handler.
func NewInquiryHandler(svc inquiryService, exports exportService, dismissAfter time.Duration) *InquiryHandler {
	return &InquiryHandler{service: svc, exports: exports, dismissAfter: dismissAfter}
}

// List godoc
// @Summary List inquiries grouped by campus
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Param program query string false "Exact program"
// @Param campus query string false "Exact campus"
// @Param creditType query string false "Credit or Non-Credit"
// @Param q query string false "Case-insensitive text search"
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Create godoc
// @Summary Record an inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.InquiryRequest true "Inquiry"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /inquiries [post]
func (h *InquiryHandler) Create(c *gin.Context) {
	var req dto.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid inquiry payload"))
		return
	}

	entry, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Clear godoc
// @Summary Delete every inquiry
// @Tags Inquiries
// @Security BearerAuth
// @Success 204
// @Failure 503 {object} response.Envelope
// @Router /inquiries [delete]
func (h *InquiryHandler) Clear(c *gin.Context) {
	if err := h.service.ClearAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Breakdown godoc
// @Summary Per-campus program counts for charts
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Param program query string false "Exact program"
// @Param campus query string false "Exact campus"
// @Param creditType query string false "Credit or Non-Credit"
// @Param q query string false "Case-insensitive text search"
// @Success 200 {object} response.Envelope
// @Router /inquiries/breakdown [get]
func (h *InquiryHandler) Breakdown(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.service.Breakdown(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Emails godoc
// @Summary Distinct emails for one campus
// @Description Returns newline-separated addresses as text/plain, or JSON when Accept asks for it.
// @Tags Inquiries
// @Produce plain
// @Produce json
// @Security BearerAuth
// @Param campus query string true "Campus group"
// @Success 200 {string} string
// @Router /inquiries/emails [get]
func (h *InquiryHandler) Emails(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	// campus selects the group; it must not also narrow the filter.
	campus := filter.Campus
	filter.Campus = ""

	res, notice, err := h.service.CampusEmails(c.Request.Context(), filter, campus)
	if err != nil {
		response.Error(c, err)
		return
	}

	kind := middleware.NoticeSuccess
	if len(res.Emails) == 0 {
		kind = middleware.NoticeInfo
	}
	middleware.SetNotice(c, notice, kind, h.dismissAfter)

	if c.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) == gin.MIMEJSON {
		response.JSON(c, http.StatusOK, res, middleware.ExtractMeta(c))
		return
	}
	response.Text(c, http.StatusOK, res.Clipboard)
}

// Export godoc
// @Summary Download the filtered list
// @Tags Inquiries
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /inquiries/export [get]
func (h *InquiryHandler) Export(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.exports.Export(c.Request.Context(), service.ExportRequest{Format: c.Query("format"), Filter: filter})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
