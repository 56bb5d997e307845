package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ipd-emporium/emporium-api/models"
)

type googleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
	GuestID string `json:"guest_id"`
}

// POST /auth/google-admin
// GoogleAdminLogin is the second factor of the admin gate: it requires a
// valid passcode token (X-Passcode-Token header) plus a Google ID token.
// Unknown admins are registered pending approval by the super admin.
func (s *Service) GoogleAdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Firebase == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		if !s.checkPasscodeToken(c.GetHeader("X-Passcode-Token")) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Passcode verification required"})
			return
		}

		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := context.Background()
		token, err := s.Firebase.VerifyIDTokenAndCheckRevoked(ctx, input.IDToken)
		if err != nil {
			log.Printf("❌ ID token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if token.Audience != s.Cfg.FirebaseProjectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, ok := token.Claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		// Super admin shortcut
		if email == s.Cfg.SuperAdminEmail && email != "" {
			s.respondWithAdminToken(c, email, "superadmin", name, picture)
			return
		}

		var admin models.Admin
		err = s.DB.Where("email = ?", email).First(&admin).Error
		if err == gorm.ErrRecordNotFound {
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
			if err := s.DB.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (pending approval)", email)
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := s.DB.Model(&admin).Updates(models.Admin{Name: name, Picture: picture}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin info"})
			return
		}
		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Pending approval by super admin"})
			return
		}

		s.respondWithAdminToken(c, email, "admin", name, picture)
	}
}

func (s *Service) respondWithAdminToken(c *gin.Context, email, role, name, picture string) {
	tokenStr, err := s.issueAdminToken(email, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   tokenStr,
		"role":    role,
		"email":   email,
		"name":    name,
		"picture": picture,
	})
}

// POST /auth/google-user
// GoogleUserLogin signs a shopper in, creating the user and their cart on
// first sight. A guest_id carries the pre-login cart over: its lines are
// merged into the user's cart so nothing in the basket is lost at sign-in.
func (s *Service) GoogleUserLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Firebase == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is not configured"})
			return
		}

		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := context.Background()
		token, err := s.Firebase.VerifyIDTokenAndCheckRevoked(ctx, input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if token.Audience != s.Cfg.FirebaseProjectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		userID := token.UID

		var user models.User
		err = s.DB.Preload("Cart.Items").Where("id = ?", userID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:       userID,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Cart:     models.Cart{UserID: userID},
			}
			if err := s.DB.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if input.GuestID != "" {
			if err := s.mergeGuestCart(input.GuestID, userID); err != nil {
				log.Printf("⚠️ Failed to merge guest cart %s into %s: %v", input.GuestID, userID, err)
			}
		}

		tokenStr, err := s.issueUserToken(userID, "user", 60*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   tokenStr,
			"user_id": userID,
			"email":   email,
			"name":    name,
			"picture": picture,
		})
	}
}

// mergeGuestCart moves guest cart lines into the signed-in user's cart.
// Lines for the same product are combined and the result is clamped to live
// stock; lines whose product disappeared or sold out are dropped.
func (s *Service) mergeGuestCart(guestID, userID string) error {
	var guestCart models.Cart
	err := s.DB.Preload("Items").Where("user_id = ?", guestID).First(&guestCart).Error
	if err == gorm.ErrRecordNotFound || (err == nil && len(guestCart.Items) == 0) {
		return nil
	}
	if err != nil {
		return err
	}

	var userCart models.Cart
	err = s.DB.Where("user_id = ?", userID).First(&userCart).Error
	if err == gorm.ErrRecordNotFound {
		userCart = models.Cart{UserID: userID}
		if err := s.DB.Create(&userCart).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range guestCart.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				return err
			}
			if product.Stock <= 0 {
				continue
			}

			var existing models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", userCart.CartID, item.ProductID).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				item.ID = 0
				item.CartID = userCart.CartID
				if item.Quantity > product.Stock {
					item.Quantity = product.Stock
				}
				item.ProductStock = product.Stock
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.Quantity += item.Quantity
			if existing.Quantity > product.Stock {
				existing.Quantity = product.Stock
			}
			existing.ProductStock = product.Stock
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.CartItem{}).Error
	})
}
