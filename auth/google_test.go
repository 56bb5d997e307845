package auth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/models"
)

func setupCartDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func addLine(t *testing.T, db *gorm.DB, cartID, productID uint, qty int) {
	t.Helper()
	require.NoError(t, db.Create(&models.CartItem{
		CartID:       cartID,
		ProductID:    productID,
		ProductName:  fmt.Sprintf("Product %d", productID),
		ProductPrice: 1000,
		Quantity:     qty,
	}).Error)
}

func TestMergeGuestCartCombinesAndClampsToStock(t *testing.T) {
	db := setupCartDB(t)
	svc := &Service{DB: db}

	products := []models.Product{
		{Name: "Limited", Price: 1000, Category: "general", Image: "a.jpg", Stock: 5},
		{Name: "Plenty", Price: 2000, Category: "general", Image: "b.jpg", Stock: 50},
	}
	require.NoError(t, db.Create(&products).Error)

	guestCart := models.Cart{UserID: "guest_abc"}
	require.NoError(t, db.Create(&guestCart).Error)
	addLine(t, db, guestCart.CartID, products[0].ID, 4)
	addLine(t, db, guestCart.CartID, products[1].ID, 2)

	userCart := models.Cart{UserID: "user-1"}
	require.NoError(t, db.Create(&userCart).Error)
	addLine(t, db, userCart.CartID, products[0].ID, 3)

	require.NoError(t, svc.mergeGuestCart("guest_abc", "user-1"))

	var merged models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&merged).Error)
	require.Len(t, merged.Items, 2)

	byProduct := map[uint]models.CartItem{}
	for _, item := range merged.Items {
		byProduct[item.ProductID] = item
	}
	// 3 + 4 would exceed the 5 in stock, so the line caps there.
	assert.Equal(t, 5, byProduct[products[0].ID].Quantity)
	assert.Equal(t, 2, byProduct[products[1].ID].Quantity)

	// Guest lines are consumed by the merge.
	var guestItems int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", guestCart.CartID).Count(&guestItems)
	assert.Zero(t, guestItems)
}

func TestMergeGuestCartDropsDeadLines(t *testing.T) {
	db := setupCartDB(t)
	svc := &Service{DB: db}

	soldOut := models.Product{Name: "Sold Out", Price: 1000, Category: "general", Image: "a.jpg", Stock: 0}
	require.NoError(t, db.Create(&soldOut).Error)

	guestCart := models.Cart{UserID: "guest_abc"}
	require.NoError(t, db.Create(&guestCart).Error)
	addLine(t, db, guestCart.CartID, soldOut.ID, 2)
	addLine(t, db, guestCart.CartID, 9999, 1) // product no longer exists

	require.NoError(t, svc.mergeGuestCart("guest_abc", "user-1"))

	var merged models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&merged).Error)
	assert.Empty(t, merged.Items)
}
