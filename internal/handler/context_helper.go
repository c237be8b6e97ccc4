package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/inquiry-desk/internal/middleware"
	"github.com/noah-isme/inquiry-desk/internal/models"
	appErrors "github.com/noah-isme/inquiry-desk/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.Claims(c)
}

// filterFromQuery binds the listing filter from program, campus, creditType and q.
func filterFromQuery(c *gin.Context) (models.InquiryFilter, error) {
	var filter models.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return filter, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filter")
	}
	filter.Program = strings.TrimSpace(filter.Program)
	filter.Campus = strings.TrimSpace(filter.Campus)
	filter.CreditType = models.CreditType(strings.TrimSpace(string(filter.CreditType)))
	return filter, nil
}
