package routes

import (
	"contractor_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:lead_id", paymentHandler.CreatePaymentByLeadID)
		payments.GET("/:lead_id", paymentHandler.GetPaymentByLeadID)
		payments.GET("/:lead_id/:payment_id", paymentHandler.GetPayment)
	}
}
