package handler

import (
	"context"
	"net/http"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
)

// DemographicHandler serves census lookups
type DemographicHandler struct {
	service DemographicService
}

// DemographicService interface for dependency injection
type DemographicService interface {
	Provinces(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, province string) ([]string, error)
	Districts(ctx context.Context, province, city string) ([]string, error)
	Population(ctx context.Context, f models.PopulationFilter, page, pageSize int) (*models.PopulationPage, error)
	AgeDistribution(ctx context.Context, f models.PopulationFilter) (*models.AgeDistribution, error)
}

// NewDemographicHandler creates a new demographic handler
func NewDemographicHandler(svc DemographicService) *DemographicHandler {
	return &DemographicHandler{service: svc}
}

// Provinces handles GET /api/demographics/provinces requests
//
// @Summary List provinces with census data
// @Tags Demographics
// @Produce json
// @Success 200 {array} string
// @Router /api/demographics/provinces [get]
func (h *DemographicHandler) Provinces(c *gin.Context) {
	provinces, err := h.service.Provinces(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provinces)
}

// Cities handles GET /api/demographics/cities requests
//
// @Summary List cities of a province
// @Tags Demographics
// @Produce json
// @Param province query string true "Province"
// @Success 200 {array} string
// @Router /api/demographics/cities [get]
func (h *DemographicHandler) Cities(c *gin.Context) {
	province := c.Query("province")
	if province == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'province'"})
		return
	}

	cities, err := h.service.Cities(c.Request.Context(), province)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// Districts handles GET /api/demographics/districts requests
//
// @Summary List districts of a city
// @Tags Demographics
// @Produce json
// @Param province query string true "Province"
// @Param city query string true "City"
// @Success 200 {array} string
// @Router /api/demographics/districts [get]
func (h *DemographicHandler) Districts(c *gin.Context) {
	province, city := c.Query("province"), c.Query("city")
	if province == "" || city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'province' and 'city'"})
		return
	}

	districts, err := h.service.Districts(c.Request.Context(), province, city)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, districts)
}

// Population handles GET /api/demographics/population requests
//
// @Summary Census records, most recent first
// @Tags Demographics
// @Produce json
// @Param province query string false "Province"
// @Param city query string false "City"
// @Param district query string false "District"
// @Param reference_date query string false "Reference date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} models.PopulationPage
// @Failure 400 {object} map[string]string
// @Router /api/demographics/population [get]
func (h *DemographicHandler) Population(c *gin.Context) {
	filter, ok := populationFilter(c)
	if !ok {
		return
	}
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

	result, err := h.service.Population(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AgeDistribution handles GET /api/demographics/age-distribution requests
//
// @Summary Population per age bracket
// @Tags Demographics
// @Produce json
// @Param province query string false "Province"
// @Param city query string false "City"
// @Param district query string false "District"
// @Param region query string false "Province, city or district"
// @Success 200 {object} models.AgeDistribution
// @Router /api/demographics/age-distribution [get]
func (h *DemographicHandler) AgeDistribution(c *gin.Context) {
	filter, ok := populationFilter(c)
	if !ok {
		return
	}

	dist, err := h.service.AgeDistribution(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

func populationFilter(c *gin.Context) (models.PopulationFilter, bool) {
	date, err := queryDate(c, "reference_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.PopulationFilter{}, false
	}
	return models.PopulationFilter{
		Province:      c.Query("province"),
		City:          c.Query("city"),
		District:      c.Query("district"),
		Region:        c.Query("region"),
		ReferenceDate: date,
	}, true
}
