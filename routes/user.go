package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/config"
	cartControllers "github.com/ipd-emporium/emporium-api/controllers/cart"
	checkoutControllers "github.com/ipd-emporium/emporium-api/controllers/checkout"
	userControllers "github.com/ipd-emporium/emporium-api/controllers/user"
	"github.com/ipd-emporium/emporium-api/middleware"
	"github.com/ipd-emporium/emporium-api/paystack"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, pay *paystack.Client) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.StartCheckout(db, cfg, pay))
	}
}
