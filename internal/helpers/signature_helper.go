package helpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// OrderSignature signs an order reference so receipt QR codes cannot be
// forged.
func OrderSignature(orderID, email string) string {
	data := fmt.Sprintf("%s:%s", orderID, email)
	h := hmac.New(sha256.New, []byte(os.Getenv("JWT_SECRET")))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// ValidOrderSignature checks a signature produced by OrderSignature.
func ValidOrderSignature(orderID, email, signature string) bool {
	expected := OrderSignature(orderID, email)
	return hmac.Equal([]byte(expected), []byte(signature))
}
