package pricing

import "github.com/shopspring/decimal"

// BuybackRecord is one reference price for a device, keyed by storage tier and
// cosmetic condition grade seeded by the catalog admin.
type BuybackRecord struct {
	Storage   string          `json:"storage"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
}

// Catalog carries every reference price for a single device. It is loaded by
// the caller (from the device_catalogs store) and passed per call; the engine
// holds no state between calls.
type Catalog struct {
	Buyback []BuybackRecord `json:"buyback"`

	// Repair maps an issue tag to its repair price. Screen repairs are keyed
	// per quality tier: "screen:original", "screen:premium", "screen:standard".
	Repair map[string]decimal.Decimal `json:"repair"`
}

// RepairPrice resolves the repair price for an issue, zero when unseeded.
func (c Catalog) RepairPrice(issue Issue) decimal.Decimal {
	return c.Repair[string(issue)]
}

// ScreenPrice resolves the screen repair price for a quality tier.
func (c Catalog) ScreenPrice(q ScreenQuality) decimal.Decimal {
	return c.Repair["screen:"+string(q)]
}

// storagePrice returns the buyback record matching the declared storage
// exactly, or false when no record matches.
func (c Catalog) storagePrice(storage string) (decimal.Decimal, bool) {
	for _, r := range c.Buyback {
		if r.Storage == storage {
			return r.Price, true
		}
	}
	return decimal.Zero, false
}

// maxBuybackPrice is the optimistic fallback when exact-storage pricing is not
// seeded yet: the highest price across all records for the device.
func (c Catalog) maxBuybackPrice() decimal.Decimal {
	best := decimal.Zero
	for _, r := range c.Buyback {
		if r.Price.GreaterThan(best) {
			best = r.Price
		}
	}
	return best
}

// screenQualityFallback is the fixed priority used when the selected screen
// tier has no positive price.
var screenQualityFallback = []ScreenQuality{QualityOriginal, QualityPremium, QualityStandard}

// minPositiveScreenPrice is the cheapest seeded screen repair across all
// tiers, used as the damage-deduction reference for buybacks.
func (c Catalog) minPositiveScreenPrice() (decimal.Decimal, bool) {
	var cheapest decimal.Decimal
	found := false
	for _, q := range screenQualityFallback {
		p := c.ScreenPrice(q)
		if p.GreaterThan(decimal.Zero) && (!found || p.LessThan(cheapest)) {
			cheapest = p
			found = true
		}
	}
	return cheapest, found
}
