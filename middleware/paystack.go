package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaystackWebhookAuth verifies the x-paystack-signature header: an
// HMAC-SHA512 of the raw request body keyed with the secret key. The body is
// restored for the handler after verification.
func PaystackWebhookAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("x-paystack-signature")
		if provided == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "missing webhook signature"})
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		mac := hmac.New(sha512.New, []byte(secretKey))
		mac.Write(body)
		calculated := hex.EncodeToString(mac.Sum(nil))

		if !strings.EqualFold(calculated, provided) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
