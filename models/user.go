package models

import "time"

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null"`
	Phone     string
	Name      string
	Picture   string
	Provider  string
	Address   Address `gorm:"embedded"`
	Cart      Cart    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders    []Order `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders"`
	CreatedAt time.Time
}

// Address is embedded in User and prefills the checkout form.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
}

// GuestUser lets a shopper carry a cart without signing in. Expired guests
// (and their carts, via cascade) are fair game for cleanup.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
