package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/auth"
	"github.com/ipd-emporium/emporium-api/config"
	adminController "github.com/ipd-emporium/emporium-api/controllers/admin"
	cartControllers "github.com/ipd-emporium/emporium-api/controllers/cart"
	productcontroller "github.com/ipd-emporium/emporium-api/controllers/product"
	userControllers "github.com/ipd-emporium/emporium-api/controllers/user"
	"github.com/ipd-emporium/emporium-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin gate
// middleware (passcode + Google session, enforced server-side).
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, authSvc *auth.Service) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken(db, cfg.JWTSecret))
	{
		// ─────────── Session ───────────
		// Heartbeat the dashboard polls while mounted
		adminGroup.GET("/session", authSvc.SessionHeartbeat())
		adminGroup.POST("/logout", authSvc.Logout())

		// ─────────── Dashboard aggregates ───────────
		adminGroup.GET("/stats", adminController.GetQuickStats(db))
		adminGroup.GET("/activity", adminController.GetActivityFeed(db))

		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(db))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(db))
			adminMgmt.POST("/reject", adminController.RejectAdmin(db))
		}

		// ─────────── Support: inspect a shopper's cart ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
