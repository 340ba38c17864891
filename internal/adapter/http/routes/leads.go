package routes

import (
	"contractor_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads       = "/leads"
	PathContractors = "/contractors"
)

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler) {
	rg.GET(PathContractors+"/:contractor_id/leads", h.ListByContractor)

	leads := rg.Group(PathLeads)
	{
		leads.GET("/:id", h.GetLead)
		leads.DELETE("/:id", h.Delete)
		leads.GET("/:id/estimate/wait", h.WaitForEstimate)
		leads.PATCH("/:id/status", h.UpdateStatus)
		leads.PUT("/:id/estimate", h.ReplaceEstimate)
		leads.PATCH("/:id/estimate/items", h.EditLineItem)
		leads.POST("/:id/estimate/lines", h.AddLine)
		leads.POST("/:id/sign", h.Sign)
		leads.POST("/:id/send", h.Send)
	}
}
