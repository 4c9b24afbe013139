package routes

import (
	"log"

	"duka_payments/internal/adapter/http/handlers"
	"duka_payments/internal/adapter/http/middleware"
	"duka_payments/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, cfg config.Config, paymentHandler *handlers.PaymentHandler, callbackHandler *handlers.CallbackHandler) {
	payments := rg.Group(PathPayments)
	{
		// The order webhook sits behind the HMAC filter; the Daraja callback
		// and the polling endpoint do not share the storefront secret.
		initiate := payments.Group("")
		if cfg.WebhookSecret != "" {
			initiate.Use(middleware.WebhookSignature(cfg.WebhookSecret))
		} else {
			log.Printf("[routes] WEBHOOK_SECRET not set; order webhook signature verification disabled")
		}
		initiate.POST("", paymentHandler.Initiate)

		payments.POST("/callback", callbackHandler.HandleStkCallback)
		payments.GET("/status/:reference", paymentHandler.GetStatus)
	}
}
