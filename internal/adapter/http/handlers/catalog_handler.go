package handlers

import (
	"net/http"

	"contractor_estimates/internal/adapter/http/dto/request"
	"contractor_estimates/internal/adapter/http/dto/response"
	"contractor_estimates/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{usecase: uc, logger: logger}
}

// ListCategories godoc
// @Summary List a contractor's service categories
// @Tags catalog
// @Produce json
// @Param contractor_id path string true "contractor id"
// @Param exclude query string false "comma-separated category ids to hide"
// @Success 200 {array} response.CategoryResponse
// @Router /contractors/{contractor_id}/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.usecase.LoadCategories(c.Request.Context(), c.Param("contractor_id"), request.ParseExcluded(c.Query("exclude")))
	if err != nil {
		h.logger.Warn("[catalog][handler] list failed", zap.String("contractor_id", c.Param("contractor_id")), zap.Error(err))
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(cats))
}

// MatchCategories godoc
// @Summary Rank a contractor's categories against a project description
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body request.MatchCategoriesRequest true "contractor and description"
// @Success 200 {array} response.CategoryResponse
// @Router /categories/match [post]
func (h *CatalogHandler) MatchCategories(c *gin.Context) {
	var req request.MatchCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}
	cats, err := h.usecase.MatchCategories(c.Request.Context(), req.ContractorID, req.Description, req.Exclude)
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(cats))
}
