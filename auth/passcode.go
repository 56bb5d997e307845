package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// The passcode token is deliberately short-lived: it only has to bridge the
// gap between the passcode form and the Google sign-in step.
const passcodeTokenTTL = 15 * time.Minute

type passcodeInput struct {
	Passcode string `json:"passcode" binding:"required"`
}

// POST /auth/admin/passcode
// VerifyPasscode is the first factor of the admin gate. Every attempt is
// evaluated independently; there is no lockout. Success issues a short-lived
// token the Google sign-in step must present.
func (s *Service) VerifyPasscode() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.Cfg.AdminPasscode == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin gate is not configured"})
			return
		}

		var input passcodeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "passcode is required"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(input.Passcode), []byte(s.Cfg.AdminPasscode)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong passcode. Access denied."})
			return
		}

		token, err := s.signToken(jwt.MapClaims{
			"scope": "passcode",
			"exp":   time.Now().Add(passcodeTokenTTL).Unix(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"passcode_token": token})
	}
}

// checkPasscodeToken validates the first-factor token handed to the Google
// sign-in step.
func (s *Service) checkPasscodeToken(tokenString string) bool {
	if tokenString == "" {
		return false
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	scope, _ := claims["scope"].(string)
	return scope == "passcode"
}
