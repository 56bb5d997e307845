package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

// UpdateProductInput carries a partial update: only fields present in the
// payload are merged into the product.
type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	SalePrice   *float64  `json:"sale_price"`
	Category    *string   `json:"category"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Stock       *int      `json:"stock"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
	Featured    *bool     `json:"featured"`
	Trending    *bool     `json:"trending"`
}

// UpdateProduct merges the provided fields into an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
				return
			}
			product.Price = *input.Price
		}
		if input.SalePrice != nil {
			if *input.SalePrice < 0 || (*input.SalePrice > 0 && *input.SalePrice >= product.Price) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must be lower than price"})
				return
			}
			product.SalePrice = *input.SalePrice
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
				return
			}
			product.Stock = *input.Stock
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.Reviews != nil {
			product.Reviews = *input.Reviews
		}
		if input.Featured != nil {
			product.Featured = *input.Featured
		}
		if input.Trending != nil {
			product.Trending = *input.Trending
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
