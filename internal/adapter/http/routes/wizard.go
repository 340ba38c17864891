package routes

import (
	"contractor_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathWizardSessions = "/wizard/sessions"

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.DisposeSession)
		sessions.PUT("/:id/photos", h.SetPhotos)
		sessions.PUT("/:id/description", h.SetDescription)
		sessions.GET("/:id/categories/suggested", h.SuggestCategories)
		sessions.PUT("/:id/categories", h.SelectCategories)
		sessions.POST("/:id/advance", h.Advance)
		sessions.PUT("/:id/answers/:question_id", h.RecordAnswer)
		sessions.POST("/:id/contact", h.SubmitContact)
		sessions.PATCH("/:id/estimate/items", h.EditEstimateItem)
	}
}
