package session

import (
	"testing"
	"time"
)

func TestStaffToken_RoundTrip(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := SignStaffToken("tech@belmobile.be", "technician", "belmobile-backend", secret, now, 10*time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := VerifyStaffToken(s, "belmobile-backend", secret, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.Email != "tech@belmobile.be" {
		t.Fatalf("email mismatch: %q", got.Email)
	}
	if got.Role != "technician" {
		t.Fatalf("role mismatch: %q", got.Role)
	}
}

func TestVerifyStaffToken_Expired(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := SignStaffToken("tech@belmobile.be", "admin", "belmobile-backend", secret, now, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyStaffToken(s, "belmobile-backend", secret, now.Add(2*time.Minute)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerifyStaffToken_IssuerMismatch(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	s, err := SignStaffToken("tech@belmobile.be", "admin", "someone-else", secret, now, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyStaffToken(s, "belmobile-backend", secret, now); err == nil {
		t.Fatalf("expected issuer mismatch error")
	}
}

func TestVerifyStaffToken_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)

	s, err := SignStaffToken("tech@belmobile.be", "admin", "belmobile-backend", "secret-a", now, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyStaffToken(s, "belmobile-backend", "secret-b", now); err == nil {
		t.Fatalf("expected signature error")
	}
}
