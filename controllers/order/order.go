package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	DeliveryDate string `json:"delivery_date"` // optional, "2006-01-02"
}

// GetAllOrdersHandler returns the full ledger, newest first (admin view).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetUserOrdersHandler returns one shopper's orders, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// byIDOrRef matches numeric input against the primary key and anything else
// against the order ref. Binding a non-numeric string to the integer id
// column is a type error on Postgres, so the two never share a predicate.
func byIDOrRef(tx *gorm.DB, id string) *gorm.DB {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return tx.Where("id = ?", n)
	}
	return tx.Where("order_ref = ?", id)
}

// GetOrderByIDHandler looks an order up by numeric id or order ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := byIDOrRef(db.Preload("Items"), id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler mutates the only mutable fields of a ledger
// entry: status and the delivery estimate. Any status may follow any other;
// the workflow ordering is a UI affordance, not a server rule.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{"status": newStatus}
		if req.DeliveryDate != "" {
			d, err := time.Parse("2006-01-02", req.DeliveryDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery_date, expected YYYY-MM-DD"})
				return
			}
			updates["delivery_date"] = d
		}

		result := byIDOrRef(db.Model(&models.Order{}), orderID).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
