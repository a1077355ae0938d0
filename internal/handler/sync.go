package handler

import (
	"context"
	"net/http"

	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SyncHandler triggers store synchronization runs
type SyncHandler struct {
	service SyncService
}

// SyncService interface for dependency injection
type SyncService interface {
	SyncAll(ctx context.Context) (*models.SyncSummary, error)
	SyncRegion(ctx context.Context, provinceCode, subRegionCode string) (*models.SyncSummary, error)
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(svc SyncService) *SyncHandler {
	return &SyncHandler{service: svc}
}

// Sync handles POST /api/stores/sync requests. Without province_code every
// configured region is crawled. A client disconnect does not stop the run.
//
// @Summary Synchronize stores from the commercial registry
// @Tags Sync
// @Produce json
// @Param province_code query string false "Province code, e.g. 11"
// @Param sub_region_code query string false "Sub-region code, e.g. 11680"
// @Success 200 {object} models.SyncSummary
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/stores/sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	provinceCode := c.Query("province_code")
	subRegionCode := c.Query("sub_region_code")
	if provinceCode == "" && subRegionCode != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sub_region_code requires province_code"})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	var (
		summary *models.SyncSummary
		err     error
	)
	if provinceCode == "" {
		summary, err = h.service.SyncAll(ctx)
	} else {
		summary, err = h.service.SyncRegion(ctx, provinceCode, subRegionCode)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
