package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"log"
	"net/http"

	"duka_payments/pkg"

	"github.com/gin-gonic/gin"
)

const SignatureHeader = "X-Webhook-Signature"

// WebhookSignature verifies a base64-encoded HMAC-SHA256 of the raw request
// body against the shared storefront secret. Requests with a missing or
// mismatched signature are rejected with 401 before the core sees them.
// The body is restored for downstream binding.
func WebhookSignature(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read request body", http.StatusBadRequest)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		provided := c.GetHeader(SignatureHeader)
		if provided == "" || !validSignature(key, body, provided) {
			log.Printf("[webhook][middleware] signature rejected path=%s", c.FullPath())
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Missing or invalid webhook signature", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}

func validSignature(key, body []byte, provided string) bool {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	// Constant-time comparison; the base64 encoding keeps lengths stable.
	return hmac.Equal([]byte(provided), []byte(want))
}
