package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.HealthResponse
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.HealthResponse{
		Status:  "running",
		Message: "DHARMA Booking Backend API is live!",
	})
}
