package pricing

import "github.com/shopspring/decimal"

// RepairInput is the set of repairs selected on the repair form.
type RepairInput struct {
	Flow   Flow
	Device Device

	Issues        []Issue
	ScreenQuality ScreenQuality // only consulted when IssueScreen is selected

	ProtectiveFilm bool
	Delivery       DeliveryMethod
	CourierTier    CourierTier
}

// Fixed add-on fees, in euros.
var (
	protectiveFilmFee = decimal.NewFromInt(15)
	expressCourierFee = decimal.NewFromInt(10)
)

// QuoteResult is the outcome of a repair estimate. An unpriceable selection is
// a normal business state ("contact us for a quote"), not an error, and must
// not be confused with a free repair.
type QuoteResult struct {
	Amount      int64
	ManualQuote bool
}

func Priced(amount int64) QuoteResult {
	return QuoteResult{Amount: amount}
}

func ManualQuote() QuoteResult {
	return QuoteResult{ManualQuote: true}
}

// CalculateRepairPrice sums the catalog prices of the selected repairs plus
// add-on fees, in whole euros.
//
// An empty selection prices to zero: "nothing selected" is a valid, priceable
// state. A selected issue with a missing or zero catalog price invalidates the
// whole quote; summing still continues so a single bad catalog entry stays
// diagnosable, but a partial total is never returned as a final cost.
func CalculateRepairPrice(in RepairInput, cat Catalog) QuoteResult {
	if in.Flow != FlowRepair || len(in.Issues) == 0 || !in.Device.complete() {
		return Priced(0)
	}

	sum := decimal.Zero
	manual := false
	for _, issue := range in.Issues {
		var unit decimal.Decimal
		if issue == IssueScreen {
			unit = resolveScreenPrice(in.ScreenQuality, cat)
		} else {
			unit = cat.RepairPrice(issue)
		}
		if !unit.GreaterThan(decimal.Zero) {
			manual = true
			continue
		}
		sum = sum.Add(unit)
	}

	if in.ProtectiveFilm {
		sum = sum.Add(protectiveFilmFee)
	}
	if in.Delivery == DeliveryCourier && in.CourierTier == CourierExpress {
		sum = sum.Add(expressCourierFee)
	}

	if manual {
		return ManualQuote()
	}
	return Priced(sum.Round(0).IntPart())
}

// resolveScreenPrice prefers the selected quality tier and falls back across
// the remaining tiers in fixed priority when that tier is not seeded.
func resolveScreenPrice(q ScreenQuality, cat Catalog) decimal.Decimal {
	if p := cat.ScreenPrice(q); p.GreaterThan(decimal.Zero) {
		return p
	}
	for _, alt := range screenQualityFallback {
		if alt == q {
			continue
		}
		if p := cat.ScreenPrice(alt); p.GreaterThan(decimal.Zero) {
			return p
		}
	}
	return decimal.Zero
}
