package handler

import (
	"context"
	"net/http"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves recommendation requests. Responses are always
// well formed; DataSource tells live results from fallback ones.
type RecommendationHandler struct {
	service RecommendationService
}

// RecommendationService interface for dependency injection
type RecommendationService interface {
	TargetCustomer(ctx context.Context, businessType, region string) (*models.TargetCustomerAnalysis, error)
	OptimalLocation(ctx context.Context, businessType string, budget int64, targetAge string) (*models.LocationRecommendation, error)
	MarketingTiming(ctx context.Context, targetAge, businessType string) (*models.MarketingTiming, error)
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// TargetCustomer handles GET /api/recommendations/target-customer requests
//
// @Summary Rank customer age brackets for a business type
// @Tags Recommendations
// @Produce json
// @Param business_type query string true "Business type, e.g. 카페"
// @Param region query string false "Province, city or district"
// @Success 200 {object} models.TargetCustomerAnalysis
// @Failure 400 {object} map[string]string
// @Router /api/recommendations/target-customer [get]
func (h *RecommendationHandler) TargetCustomer(c *gin.Context) {
	result, err := h.service.TargetCustomer(c.Request.Context(), c.Query("business_type"), c.Query("region"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// OptimalLocation handles GET /api/recommendations/optimal-location requests
//
// @Summary Recommend districts for a new store
// @Tags Recommendations
// @Produce json
// @Param business_type query string true "Business type"
// @Param budget query int false "Budget in KRW"
// @Param target_age query string false "Target age bracket, e.g. 20대"
// @Success 200 {object} models.LocationRecommendation
// @Failure 400 {object} map[string]string
// @Router /api/recommendations/optimal-location [get]
func (h *RecommendationHandler) OptimalLocation(c *gin.Context) {
	budget, err := queryInt64(c, "budget", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.OptimalLocation(c.Request.Context(), c.Query("business_type"), budget, c.Query("target_age"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// MarketingTiming handles GET /api/recommendations/marketing-timing requests
//
// @Summary Suggest promotion days and hours
// @Tags Recommendations
// @Produce json
// @Param business_type query string true "Business type"
// @Param target_age query string false "Target age bracket, e.g. 30대"
// @Success 200 {object} models.MarketingTiming
// @Failure 400 {object} map[string]string
// @Router /api/recommendations/marketing-timing [get]
func (h *RecommendationHandler) MarketingTiming(c *gin.Context) {
	result, err := h.service.MarketingTiming(c.Request.Context(), c.Query("target_age"), c.Query("business_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
