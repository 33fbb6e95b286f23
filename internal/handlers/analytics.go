package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopbench/storefront-api/internal/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (ah *AnalyticsHandler) OrdersWithUsers(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	rows, err := ah.analyticsService.ListOrdersWithUsers(c.Request.Context(), limit, offset)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (ah *AnalyticsHandler) UserOrderSummary(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	rows, err := ah.analyticsService.ListUserOrderSummaries(c.Request.Context(), limit, offset)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (ah *AnalyticsHandler) CategoryAnalytics(c *gin.Context) {
	rows, err := ah.analyticsService.GetCategoryAnalytics(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rows)
}
