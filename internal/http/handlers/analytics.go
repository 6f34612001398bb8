package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studymood/studymood-backend/internal/http/response"
	"github.com/studymood/studymood-backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (ah *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	report, err := ah.analyticsService.GetAnalytics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, report)
}

func (ah *AnalyticsHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := ah.analyticsService.GetSuggestions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"suggestions": suggestions})
}
