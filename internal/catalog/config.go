package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tovrr/belmobile-backend/internal/pricing"
)

// Config is stored as JSONB in `device_catalogs.config`.
// Keep this versioned so we can evolve without breaking existing records.
type Config struct {
	Version  int             `json:"version"`
	Currency string          `json:"currency,omitempty"`
	Catalog  pricing.Catalog `json:"catalog"`
}

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseAndValidate decodes a raw catalog config and enforces the invariants
// the pricing engine relies on: every seeded price is non-negative and every
// buyback record names a storage tier.
func ParseAndValidate(raw json.RawMessage) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, ValidationError{Code: "VALIDATION_FAILED", Message: "invalid config json"}
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Currency == "" {
		cfg.Currency = "EUR"
	}

	for _, r := range cfg.Catalog.Buyback {
		if r.Storage == "" {
			return Config{}, ValidationError{Code: "CATALOG_STORAGE_MISSING", Message: "buyback record must name a storage tier"}
		}
		if r.Price.LessThan(decimal.Zero) {
			return Config{}, ValidationError{Code: "CATALOG_PRICE_NEGATIVE", Message: "buyback price must be >= 0"}
		}
	}
	for key, p := range cfg.Catalog.Repair {
		if key == "" {
			return Config{}, ValidationError{Code: "CATALOG_ISSUE_MISSING", Message: "repair price must name an issue"}
		}
		if p.LessThan(decimal.Zero) {
			return Config{}, ValidationError{Code: "CATALOG_PRICE_NEGATIVE", Message: "repair price must be >= 0"}
		}
	}

	return cfg, nil
}
