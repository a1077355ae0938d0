package handler

import (
	"errors"
	"net/http"

	"market-insight-api/internal/logging"
	"market-insight-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// respondError maps service errors to status codes. Only validation
// messages are echoed back to the client. Server-side failures carry the
// request id so a client report can be matched to the log line.
func respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrSyncInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "store sync already in progress"})
	case errors.Is(err, models.ErrStorageUnavailable):
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("storage unavailable")
		c.JSON(http.StatusServiceUnavailable, errorBody(c, "storage unavailable"))
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, errorBody(c, "internal server error"))
	}
}

func errorBody(c *gin.Context, msg string) gin.H {
	body := gin.H{"error": msg}
	if id := logging.RequestID(c); id != "" {
		body["request_id"] = id
	}
	return body
}
