package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ipd-emporium/emporium-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, svc *auth.Service) {
	authGroup := r.Group("/auth")
	{
		// Shopper Google login
		authGroup.POST("/google-user", svc.GoogleUserLogin())

		// Anonymous shoppers
		authGroup.POST("/guest", svc.CreateGuestUser())

		// Admin gate, factor one: shared passcode
		authGroup.POST("/admin/passcode", svc.VerifyPasscode())

		// Admin gate, factor two: Google sign-in (requires passcode token)
		authGroup.POST("/google-admin", svc.GoogleAdminLogin())
	}
}
