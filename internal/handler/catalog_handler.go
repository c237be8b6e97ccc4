package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/inquiry-desk/internal/dto"
	"github.com/noah-isme/inquiry-desk/pkg/response"
)

type catalogService interface {
	Catalog() dto.CatalogResponse
}

// CatalogHandler serves the form options.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Get godoc
// @Summary Program and campus catalog
// @Description Programs, campuses in display order, credit types and the advisor directory
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Catalog())
}
