package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per shopper (registered or guest)
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem snapshots the product at add time. Stock is the only field read
// through to the live catalog, at mutation time, to clamp quantities.
type CartItem struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	CartID           uint    `gorm:"index" json:"cart_id"`
	ProductID        uint    `json:"product_id"`
	ProductName      string  `json:"product_name"`
	ProductImage     string  `json:"product_image"`
	ProductPrice     float64 `json:"product_price"`
	ProductSalePrice float64 `json:"product_sale_price"`
	ProductStock     int     `json:"product_stock"`
	Quantity         int     `json:"quantity"`
	AddedAt          time.Time
}

// EffectivePrice mirrors Product.EffectivePrice over the snapshot fields.
func (i CartItem) EffectivePrice() float64 {
	if i.ProductSalePrice > 0 {
		return i.ProductSalePrice
	}
	return i.ProductPrice
}

// Total is derived on every read, never stored.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.EffectivePrice() * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of line quantities, used for the cart badge.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
