package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/auth"
	"github.com/ipd-emporium/emporium-api/config"
	"github.com/ipd-emporium/emporium-api/models"
	"github.com/ipd-emporium/emporium-api/paystack"
	"github.com/ipd-emporium/emporium-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.Admin{},
		&models.AdminSession{},
		&models.Cart{},
		&models.CartItem{},
		&models.CheckoutSession{},
		&models.CheckoutItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// First-run catalog seed
	if err := models.SeedProducts(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// Identity provider + token issuing
	authSvc, err := auth.New(db, cfg)
	if err != nil {
		log.Fatalf("❌ Error initializing auth service: %v", err)
	}

	// Payment provider
	pay := paystack.New(cfg.PaystackSecretKey, cfg.PaystackBaseURL)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Passcode-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, cfg, authSvc, pay)

	// Admin session sweeper runs until shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go auth.NewSessionSweeper(db, cfg.SessionSweepInterval).Run(ctx)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Fatal("❌ DATABASE_URL must be set")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}
