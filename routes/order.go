package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/config"
	orderControllers "github.com/ipd-emporium/emporium-api/controllers/order"
	"github.com/ipd-emporium/emporium-api/middleware"
)

// SetupOrderRoutes registers the order ledger endpoints. Orders are created
// only by checkout completion; there is no delete — ledger entries are
// permanent and only their status ever changes.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	orders := r.Group("/orders")
	{
		// Fetch all orders (admin)
		orders.GET("/", middleware.ValidateAdminToken(db, cfg.JWTSecret), orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific shopper
		orders.GET("/user/:userID", middleware.ValidateToken(cfg.JWTSecret), orderControllers.GetUserOrdersHandler(db))

		// Fetch a single order by id or order ref
		orders.GET("/:orderID", middleware.ValidateToken(cfg.JWTSecret), orderControllers.GetOrderByIDHandler(db))

		// Update order status / delivery estimate (admin)
		orders.PUT("/:orderID/status", middleware.ValidateAdminToken(db, cfg.JWTSecret), orderControllers.UpdateOrderStatusHandler(db))
	}
}
