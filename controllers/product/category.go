package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

type CategorySummary struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// GetCategories returns the distinct category tags in the catalog with
// product counts, for the category rail and filter sidebar.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []CategorySummary
		if err := db.Model(&models.Product{}).
			Select("category, COUNT(*) as count").
			Group("category").
			Order("category ASC").
			Scan(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
