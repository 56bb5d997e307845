package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ipd-emporium/emporium-api/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	SalePrice   float64  `json:"sale_price"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock" binding:"min=0"`
	Rating      float64  `json:"rating" binding:"min=0,max=5"`
	Reviews     int      `json:"reviews" binding:"min=0"`
	Featured    bool     `json:"featured"`
	Trending    bool     `json:"trending"`
}

// CreateProduct appends a new product to the catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.SalePrice < 0 || (input.SalePrice > 0 && input.SalePrice >= input.Price) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must be lower than price"})
			return
		}

		images := input.Images
		if len(images) == 0 {
			images = []string{input.Image}
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			SalePrice:   input.SalePrice,
			Category:    input.Category,
			Image:       input.Image,
			Images:      images,
			Stock:       input.Stock,
			Rating:      input.Rating,
			Reviews:     input.Reviews,
			Featured:    input.Featured,
			Trending:    input.Trending,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
