package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

// QuickStats is the dashboard header: derived entirely from the order
// ledger and the catalog, never stored.
type QuickStats struct {
	TotalRevenue    float64 `json:"total_revenue"` // paid + delivered orders
	TotalOrders     int64   `json:"total_orders"`
	TotalProducts   int64   `json:"total_products"`
	UniqueCustomers int64   `json:"unique_customers"`
}

// GET /admin/stats
func GetQuickStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats QuickStats

		if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("status IN ?", []models.OrderStatus{models.OrderStatusPaid, models.OrderStatusDelivered}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&stats.TotalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Distinct("customer_email").
			Count(&stats.UniqueCustomers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

// GET /admin/activity?limit=N
// GetActivityFeed returns the most recent orders for the dashboard feed.
func GetActivityFeed(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 10
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
