package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/auth"
	"github.com/ipd-emporium/emporium-api/config"
	"github.com/ipd-emporium/emporium-api/paystack"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, shopper, payment and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, authSvc *auth.Service, pay *paystack.Client) {
	// Public catalog browsing (no middleware)
	SetupCatalogRoutes(r, db)

	// Auth: passcode gate, Google sign-in, guest sessions
	SetupAuthRoutes(r, authSvc)

	// Shopper routes (JWT-protected): profile, cart, checkout
	SetupUserRoutes(r, db, cfg, pay)

	// Payment provider callbacks
	SetupPaymentRoutes(r, db, cfg, pay)

	// Order ledger
	SetupOrderRoutes(r, db, cfg)

	// Admin dashboard (passcode + Google session protected)
	SetupAdminRoutes(r, db, cfg, authSvc)
}
