package models

import "time"

type CheckoutStatus string

const (
	// AwaitingPayment: the shopper's details are captured and a hosted
	// payment flow has been opened under Reference.
	CheckoutAwaitingPayment CheckoutStatus = "awaiting_payment"
	// Succeeded: the payment provider confirmed the charge and the order
	// has been appended to the ledger.
	CheckoutSucceeded CheckoutStatus = "succeeded"
	// Cancelled: the shopper or the gateway aborted the flow. The cart is
	// untouched; checkout must be re-initiated manually.
	CheckoutCancelled CheckoutStatus = "cancelled"
)

// CheckoutSession pins one payment attempt to the customer details and cart
// lines collected for it. Reference is the idempotency key: the provider
// callback completes a session exactly once regardless of webhook
// re-delivery. Items are frozen here so the order always matches the amount
// the shopper was charged, even if the cart changes mid-payment.
type CheckoutSession struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Reference     string         `gorm:"uniqueIndex;not null" json:"reference"`
	UserID        string         `gorm:"index" json:"user_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Address       string         `json:"address"` // formatted "street, city, state zip"
	Items         []CheckoutItem `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64        `json:"subtotal"`
	ShippingCost  float64        `json:"shipping_cost"`
	TotalAmount   float64        `json:"total_amount"`
	Status        CheckoutStatus `gorm:"type:VARCHAR(20);default:'awaiting_payment'" json:"status"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CheckoutItem freezes one cart line for a payment attempt. The hosted flow
// keeps the shopper away for minutes; cart edits made in that window must not
// change what the charge pays for.
type CheckoutItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SessionID    uint    `gorm:"index" json:"session_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"` // effective price when checkout started
	Quantity     int     `json:"quantity"`
}
