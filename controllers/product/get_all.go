package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the catalog filtered and sorted by query parameters:
// q, category, min_price, max_price, sort_by.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := FilterParams{
			Query:    c.Query("q"),
			Category: c.DefaultQuery("category", "all"),
			SortBy:   c.DefaultQuery("sort_by", SortFeatured),
		}

		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			params.MinPrice = mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			params.MaxPrice = mp
		}

		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		result := FilterProducts(products, params)
		c.JSON(http.StatusOK, gin.H{
			"products": result,
			"count":    len(result),
			"total":    len(products),
		})
	}
}
