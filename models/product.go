package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"` // Naira
	SalePrice   float64 `json:"sale_price"`            // effective when > 0
	Category    string  `gorm:"not null;index" json:"category"`
	Image       string  `gorm:"not null" json:"image"`
	Images      Images  `gorm:"serializer:json" json:"images"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Featured    bool    `json:"featured"`
	Trending    bool    `json:"trending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Images []string

// EffectivePrice is the price a shopper actually pays: the sale price when
// one is set, the regular price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}
