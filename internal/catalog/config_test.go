package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAndValidate_DefaultsVersionAndCurrency(t *testing.T) {
	raw := json.RawMessage(`{
		"catalog": {
			"buyback": [{"storage": "128GB", "condition": "good", "price": "400"}],
			"repair": {"battery": "60", "screen:original": "200"}
		}
	}`)

	cfg, err := ParseAndValidate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected version default 1, got %d", cfg.Version)
	}
	if cfg.Currency != "EUR" {
		t.Fatalf("expected currency default EUR, got %q", cfg.Currency)
	}
	if got := cfg.Catalog.RepairPrice("battery"); !got.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("battery price mismatch: %s", got)
	}
}

func TestParseAndValidate_RejectsNegativePrice(t *testing.T) {
	raw := json.RawMessage(`{
		"catalog": {
			"buyback": [{"storage": "128GB", "condition": "good", "price": "-1"}]
		}
	}`)

	_, err := ParseAndValidate(raw)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != "CATALOG_PRICE_NEGATIVE" {
		t.Fatalf("expected CATALOG_PRICE_NEGATIVE, got %v", err)
	}
}

func TestParseAndValidate_RejectsMissingStorage(t *testing.T) {
	raw := json.RawMessage(`{
		"catalog": {
			"buyback": [{"condition": "good", "price": "400"}]
		}
	}`)

	_, err := ParseAndValidate(raw)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != "CATALOG_STORAGE_MISSING" {
		t.Fatalf("expected CATALOG_STORAGE_MISSING, got %v", err)
	}
}

func TestParseAndValidate_RejectsBadJSON(t *testing.T) {
	if _, err := ParseAndValidate(json.RawMessage(`{`)); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
