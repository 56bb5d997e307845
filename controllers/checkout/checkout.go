package checkoutControllers

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ipd-emporium/emporium-api/config"
	"github.com/ipd-emporium/emporium-api/models"
	"github.com/ipd-emporium/emporium-api/paystack"
	"gorm.io/gorm"
)

type StartCheckoutInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code"`
}

// ShippingCost applies the threshold rule: orders at or above the free
// threshold ship free, everything else pays the flat fee.
func ShippingCost(subtotal float64, cfg config.Config) float64 {
	if subtotal >= cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.FlatShippingFee
}

// NewReference generates the per-attempt idempotent payment reference.
func NewReference() string {
	return fmt.Sprintf("ref-%d-%s", time.Now().UnixMilli(), uuid.NewString())
}

// POST /user/checkout
// StartCheckout validates the shipping form, quotes shipping and the payable
// total, records an awaiting-payment session and opens the hosted Paystack
// flow. The cart itself is untouched until the provider confirms payment.
func StartCheckout(db *gorm.DB, cfg config.Config, pay *paystack.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input StartCheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in your name, email, phone and address", "details": err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}

		subtotal := cart.Total()
		shipping := ShippingCost(subtotal, cfg)
		total := subtotal + shipping

		name := strings.TrimSpace(input.FirstName + " " + input.LastName)
		address := fmt.Sprintf("%s, %s, %s %s", input.Address, input.City, input.State, input.ZipCode)
		address = strings.TrimSpace(strings.TrimSuffix(address, " "))

		// Freeze the cart lines into the session. Completion builds the
		// order from these, not from the live cart, so mid-payment cart
		// edits cannot desync the ledger from the charged amount.
		items := make([]models.CheckoutItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, models.CheckoutItem{
				ProductID:    line.ProductID,
				ProductName:  line.ProductName,
				ProductImage: line.ProductImage,
				UnitPrice:    line.EffectivePrice(),
				Quantity:     line.Quantity,
			})
		}

		session := models.CheckoutSession{
			Reference:     NewReference(),
			UserID:        userID,
			CustomerName:  name,
			CustomerEmail: input.Email,
			CustomerPhone: input.Phone,
			Address:       address,
			Items:         items,
			Subtotal:      subtotal,
			ShippingCost:  shipping,
			TotalAmount:   total,
			Status:        models.CheckoutAwaitingPayment,
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
			return
		}

		// Paystack charges in kobo.
		amountKobo := int64(math.Round(total * 100))
		result, err := pay.InitializeTransaction(input.Email, amountKobo, cfg.Currency, session.Reference, map[string]interface{}{
			"custom_fields": []map[string]string{
				{"display_name": "Phone", "variable_name": "phone", "value": input.Phone},
			},
		})
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"authorization_url": result.AuthorizationURL,
			"reference":         session.Reference,
			"subtotal":          subtotal,
			"shipping_cost":     shipping,
			"total_amount":      total,
		})
	}
}
