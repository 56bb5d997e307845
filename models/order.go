package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus maps free-form input to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusPaid):
		return OrderStatusPaid, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Order is a ledger entry: an immutable snapshot of the cart and customer at
// checkout time. Status and DeliveryDate are the only fields ever mutated;
// entries are never deleted.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string      `gorm:"index" json:"user_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `gorm:"index" json:"customer_email"`
	CustomerAddress string      `json:"customer_address"` // single formatted string
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        float64     `json:"subtotal"`
	ShippingCost    float64     `json:"shipping_cost"`
	TotalAmount     float64     `json:"total_amount"` // subtotal + shipping
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	DeliveryDate    *time.Time  `json:"delivery_date,omitempty"`
	PaymentRef      string      `gorm:"index" json:"payment_ref"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	UnitPrice    float64 `json:"unit_price"` // effective price at checkout time
	Quantity     int     `json:"quantity"`
}
