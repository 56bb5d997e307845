package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ipd-emporium/emporium-api/models"
)

// GET /admin/session
// SessionHeartbeat is what the dashboard polls while mounted. The admin gate
// middleware has already re-validated the token and the backing session, so
// reaching this handler means the session is live.
func (s *Service) SessionHeartbeat() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("admin_email"),
			"role":  c.GetString("admin_role"),
		})
	}
}

// POST /auth/admin/logout
// Logout revokes the backing session; every other tab polling the heartbeat
// is redirected away on its next tick.
func (s *Service) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		jti := c.GetString("admin_jti")
		if jti == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No session"})
			return
		}

		now := time.Now()
		if err := s.DB.Model(&models.AdminSession{}).
			Where("token_id = ? AND revoked_at IS NULL", jti).
			Update("revoked_at", now).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	}
}
