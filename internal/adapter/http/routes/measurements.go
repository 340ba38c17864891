package routes

import (
	"contractor_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMeasurements = "/measurements"

func addMeasurementRoutes(rg *gin.RouterGroup, h *handlers.MeasurementHandler) {
	rg.POST(PathMeasurements, h.Measure)
}
