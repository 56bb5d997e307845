package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/ipd-emporium/emporium-api/controllers/product"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/categories", productcontroller.GetCategories(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
