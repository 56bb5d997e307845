package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/config"
	checkoutControllers "github.com/ipd-emporium/emporium-api/controllers/checkout"
	"github.com/ipd-emporium/emporium-api/middleware"
	"github.com/ipd-emporium/emporium-api/paystack"
)

// SetupPaymentRoutes registers the payment provider callback endpoints.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, pay *paystack.Client) {
	payment := r.Group("/payment")
	{
		// Webhook endpoint: signature middleware verifies authenticity
		payment.POST("/webhook",
			middleware.PaystackWebhookAuth(cfg.PaystackSecretKey),
			checkoutControllers.PaystackWebhookHandler(db),
		)

		// Redirect-path fallback: server-side verify then complete
		payment.GET("/verify/:reference", checkoutControllers.VerifyPaymentHandler(db, pay))

		// Shopper backed out of the hosted flow
		payment.POST("/cancel/:reference", checkoutControllers.CancelCheckout(db))
	}
}
