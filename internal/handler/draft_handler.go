package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/inquiry-desk/internal/dto"
	"github.com/noah-isme/inquiry-desk/internal/middleware"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
	"github.com/noah-isme/inquiry-desk/pkg/response"
)

// Save banner texts.
const (
	NoticeSaved      = "Inquiry saved"
	NoticeSaveFailed = "Failed to save inquiry (see console)"
)

type draftService interface {
	GenerateDrafts(ctx context.Context, req dto.DraftRequest) *dto.DraftResponse
	PreviewDrafts(req dto.DraftRequest) *dto.DraftResponse
}

// DraftHandler exposes the email generator.
type DraftHandler struct {
	service      draftService
	dismissAfter time.Duration
}

// NewDraftHandler constructs the handler. dismissAfter controls the save banner lifetime.
func NewDraftHandler(svc draftService, dismissAfter time.Duration) *DraftHandler {
	return &DraftHandler{service: svc, dismissAfter: dismissAfter}
}

// Generate godoc
// @Summary Draft emails and save the inquiry
// @Description Renders the student and advisor emails. The inquiry is saved best effort; meta.notice reports the outcome.
// @Tags Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.DraftRequest true "Generator form"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /drafts [post]
func (h *DraftHandler) Generate(c *gin.Context) {
	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid draft payload"))
		return
	}

	res := h.service.GenerateDrafts(c.Request.Context(), req)
	if res.Saved {
		middleware.SetNotice(c, NoticeSaved, middleware.NoticeSuccess, h.dismissAfter)
	} else {
		middleware.SetNotice(c, NoticeSaveFailed, middleware.NoticeError, h.dismissAfter)
	}

	response.JSON(c, http.StatusOK, res, middleware.ExtractMeta(c))
}

// Preview godoc
// @Summary Draft emails without saving
// @Tags Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.DraftRequest true "Generator form"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /drafts/preview [post]
func (h *DraftHandler) Preview(c *gin.Context) {
	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid draft payload"))
		return
	}

	response.JSON(c, http.StatusOK, h.service.PreviewDrafts(req))
}
