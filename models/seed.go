package models

import (
	"log"

	"gorm.io/gorm"
)

// defaultProducts is the first-run catalog. Inserted only when the products
// table is empty so a fresh deployment is browsable immediately.
var defaultProducts = []Product{
	{
		Name:        "Wireless Noise-Cancelling Headphones",
		Description: "Premium wireless headphones with active noise cancellation, 30-hour battery life, and superior sound quality.",
		Price:       299000,
		SalePrice:   249000,
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
		Images: Images{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
		},
		Stock:    45,
		Rating:   4.8,
		Reviews:  342,
		Featured: true,
		Trending: true,
	},
	{
		Name:        "Smart Watch Series X",
		Description: "Advanced fitness tracking, heart rate monitoring, GPS, and seamless smartphone integration.",
		Price:       399000,
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
		Images:      Images{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80"},
		Stock:       32,
		Rating:      4.6,
		Reviews:     189,
		Trending:    true,
	},
	{
		Name:        "Classic Leather Jacket",
		Description: "Timeless genuine leather jacket with premium stitching. A wardrobe essential.",
		Price:       249000,
		Category:    "fashion",
		Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&q=80",
		Images:      Images{"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&q=80"},
		Stock:       18,
		Rating:      4.7,
		Reviews:     156,
		Featured:    true,
	},
	{
		Name:        "Minimalist Sneakers",
		Description: "Comfortable all-day wear with clean, modern design. Made from sustainable materials.",
		Price:       89999,
		SalePrice:   69999,
		Category:    "fashion",
		Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800&q=80",
		Images:      Images{"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=800&q=80"},
		Stock:       67,
		Rating:      4.5,
		Reviews:     423,
		Trending:    true,
	},
	{
		Name:        "Modern Table Lamp",
		Description: "Elegant minimalist design with adjustable brightness for reading or ambient lighting.",
		Price:       79999,
		Category:    "home",
		Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80",
		Images:      Images{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&q=80"},
		Stock:       41,
		Rating:      4.4,
		Reviews:     98,
	},
	{
		Name:        "Ceramic Coffee Mug Set",
		Description: "Set of 4 handcrafted ceramic mugs. Microwave and dishwasher safe.",
		Price:       34999,
		Category:    "home",
		Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=800&q=80",
		Images:      Images{"https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=800&q=80"},
		Stock:       120,
		Rating:      4.3,
		Reviews:     77,
	},
}

// SeedProducts populates the catalog on first run. An empty or unreadable
// table is treated as "no data", not an error.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := make([]Product, len(defaultProducts))
	copy(products, defaultProducts)
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("🌱 Seeded default catalog with %d products", len(defaultProducts))
	return nil
}
