package routes

import (
	"contractor_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCategories = "/categories"

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathContractors+"/:contractor_id/categories", h.ListCategories)
	rg.POST(PathCategories+"/match", h.MatchCategories)
}
