package handler

import (
	"context"
	"net/http"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
)

const defaultRadiusKm = 1.0

// StoreHandler handles store catalog queries
type StoreHandler struct {
	service StoreService
}

// StoreService interface for dependency injection
type StoreService interface {
	Nearby(ctx context.Context, lat, lon, radiusKm float64, businessType string, limit int) ([]models.StoreWithDistance, error)
	ByRegion(ctx context.Context, f models.StoreFilter, page, pageSize int) (*models.StorePage, error)
	Statistics(ctx context.Context, province, city string, topN int) (*models.StoreStatistics, error)
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(svc StoreService) *StoreHandler {
	return &StoreHandler{service: svc}
}

// Nearby handles GET /api/stores/nearby requests
//
// @Summary List open stores near a point
// @Tags Stores
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Search radius in kilometers" default(1)
// @Param business_type query string false "Business type substring"
// @Param limit query int false "Maximum results" default(50)
// @Success 200 {array} models.StoreWithDistance
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/stores/nearby [get]
func (h *StoreHandler) Nearby(c *gin.Context) {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := queryFloat(c, "lat", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}
	lon, err := queryFloat(c, "lon", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}
	radius, err := queryFloat(c, "radius_km", defaultRadiusKm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stores, err := h.service.Nearby(c.Request.Context(), lat, lon, radius, c.Query("business_type"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

// ByRegion handles GET /api/stores/region requests
//
// @Summary List open stores in a region
// @Tags Stores
// @Produce json
// @Param province query string false "Province (exact)"
// @Param city query string false "City or district-level gu (exact)"
// @Param district query string false "Dong substring"
// @Param business_type query string false "Business type substring"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} models.StorePage
// @Failure 400 {object} map[string]string
// @Router /api/stores/region [get]
func (h *StoreHandler) ByRegion(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pageSize, err := queryInt(c, "pageSize", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := models.StoreFilter{
		Province:     c.Query("province"),
		City:         c.Query("city"),
		District:     c.Query("district"),
		BusinessType: c.Query("business_type"),
	}
	result, err := h.service.ByRegion(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Statistics handles GET /api/stores/statistics requests
//
// @Summary Business type and sub-region breakdown of open stores
// @Tags Stores
// @Produce json
// @Param province query string false "Province (exact)"
// @Param city query string false "City (exact)"
// @Param top query int false "Rows per breakdown" default(10)
// @Success 200 {object} models.StoreStatistics
// @Router /api/stores/statistics [get]
func (h *StoreHandler) Statistics(c *gin.Context) {
	top, err := queryInt(c, "top", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.service.Statistics(c.Request.Context(), c.Query("province"), c.Query("city"), top)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
