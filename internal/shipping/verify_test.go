package shipping

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"orderToken":"tok-1","status":"delivered"}`)
	secret := "webhook_secret"

	if !VerifySignature(body, sign(body, secret), secret) {
		t.Fatalf("valid signature rejected")
	}
	if VerifySignature(body, sign(body, "other_secret"), secret) {
		t.Fatalf("signature with wrong secret accepted")
	}
	if VerifySignature(body, "", secret) {
		t.Fatalf("empty signature accepted")
	}
	if VerifySignature(body, sign(body, secret), "") {
		t.Fatalf("empty secret accepted")
	}
	tampered := append([]byte{}, body...)
	tampered[0] = '['
	if VerifySignature(tampered, sign(body, secret), secret) {
		t.Fatalf("tampered body accepted")
	}
}

func TestParcelTransitions_NeverSkipFinancialGates(t *testing.T) {
	// A carrier event must never move an unpaid order into a paid state.
	for _, target := range parcelTransitions {
		if target == "paid" || target == "payment_queued" || target == "invoiced" {
			t.Fatalf("carrier events must not target financial statuses, got %s", target)
		}
	}
}
