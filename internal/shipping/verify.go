package shipping

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifySignature verifies the carrier webhook signature using the shared
// secret. Signature header is base64(HMAC_SHA256(body)).
func VerifySignature(body []byte, header string, secret string) bool {
	if header == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(header))
}
