package checkoutControllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderControllers "github.com/ipd-emporium/emporium-api/controllers/order"
	"github.com/ipd-emporium/emporium-api/models"
	"github.com/ipd-emporium/emporium-api/paystack"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrSessionCancelled = errors.New("checkout session was cancelled")
	ErrSessionEmpty     = errors.New("checkout session has no items")
)

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// lockForUpdate takes row locks on dialects that support them. SQLite (used
// in tests) serializes writers on its own and rejects FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CompleteCheckout converts a paid checkout session into a ledger entry:
// within one transaction it turns the session's frozen line items into a new
// order with status "paid", decrements stock under row locks, clears the
// cart and marks the session succeeded. A session that already succeeded is
// a no-op, so webhook re-delivery cannot duplicate orders.
func CompleteCheckout(db *gorm.DB, reference string) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.CheckoutSession
		if err := lockForUpdate(tx).
			Preload("Items").
			Where("reference = ?", reference).
			First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		switch session.Status {
		case models.CheckoutSucceeded:
			// Already completed; hand back the existing order.
			return tx.Preload("Items").Where("payment_ref = ?", reference).First(&order).Error
		case models.CheckoutCancelled:
			return ErrSessionCancelled
		}

		if len(session.Items) == 0 {
			return ErrSessionEmpty
		}

		var orderItems []models.OrderItem
		for _, item := range session.Items {
			var product models.Product
			if err := lockForUpdate(tx).
				First(&product, item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				UnitPrice:    item.UnitPrice,
				Quantity:     item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          session.UserID,
			CustomerName:    session.CustomerName,
			CustomerEmail:   session.CustomerEmail,
			CustomerAddress: session.Address,
			Items:           orderItems,
			Subtotal:        session.Subtotal,
			ShippingCost:    session.ShippingCost,
			TotalAmount:     session.TotalAmount,
			Status:          models.OrderStatusPaid,
			PaymentRef:      session.Reference,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The whole cart is cleared, including lines added after checkout
		// started; the shopper starts fresh after a purchase.
		var cart models.Cart
		cartErr := tx.Where("user_id = ?", session.UserID).First(&cart).Error
		switch {
		case cartErr == nil:
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		case !errors.Is(cartErr, gorm.ErrRecordNotFound):
			return cartErr
		}

		return tx.Model(&session).Update("status", models.CheckoutSucceeded).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	orderControllers.BroadcastNewOrder(order)
	return order, nil
}

// CancelCheckout returns an awaiting session to the cancelled state. The
// cart and form data survive; the shopper re-initiates payment manually.
func CancelCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reference := c.Param("reference")
		if reference == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
			return
		}

		result := db.Model(&models.CheckoutSession{}).
			Where("reference = ? AND status = ?", reference, models.CheckoutAwaitingPayment).
			Update("status", models.CheckoutCancelled)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel checkout"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no pending checkout for reference"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Payment was cancelled"})
	}
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Status    string `json:"status"`
	} `json:"data"`
}

// chargedKobo is the amount the provider was asked to collect for a session.
func chargedKobo(session models.CheckoutSession) int64 {
	return int64(math.Round(session.TotalAmount * 100))
}

// PaystackWebhookHandler is the primary success resumption. Signature
// verification happens in middleware before this runs; the confirmed amount
// must still match what the session charged.
func PaystackWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event webhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse webhook payload"})
			return
		}

		if event.Event != "charge.success" {
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
			return
		}

		var session models.CheckoutSession
		if err := db.Where("reference = ?", event.Data.Reference).First(&session).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown payment reference"})
			return
		}
		if expected := chargedKobo(session); event.Data.Amount != expected {
			log.Printf("⚠️ Webhook amount mismatch for %s: confirmed %d kobo, charged %d", event.Data.Reference, event.Data.Amount, expected)
			c.JSON(http.StatusBadRequest, gin.H{"error": "confirmed amount does not match charge"})
			return
		}

		order, err := CompleteCheckout(db, event.Data.Reference)
		if err != nil {
			log.Printf("Failed to place order for reference %s: %v", event.Data.Reference, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order_ref": order.OrderRef})
	}
}

// VerifyPaymentHandler is the redirect-path fallback: the client lands back
// with a reference, the server confirms the charge with Paystack directly
// and completes the checkout if the provider says success.
func VerifyPaymentHandler(db *gorm.DB, pay *paystack.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		reference := c.Param("reference")
		if reference == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
			return
		}

		result, err := pay.VerifyTransaction(reference)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		if result.Status != "success" {
			c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Payment not successful: %s", result.Status)})
			return
		}

		var session models.CheckoutSession
		if err := db.Where("reference = ?", reference).First(&session).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown payment reference"})
			return
		}
		if expected := chargedKobo(session); result.AmountKobo != expected {
			log.Printf("⚠️ Verified amount mismatch for %s: confirmed %d kobo, charged %d", reference, result.AmountKobo, expected)
			c.JSON(http.StatusBadRequest, gin.H{"error": "confirmed amount does not match charge"})
			return
		}

		order, err := CompleteCheckout(db, reference)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
	}
}
