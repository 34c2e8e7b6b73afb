package pricing

import "github.com/shopspring/decimal"

// BuybackInput is the declared condition of a device offered for buyback.
type BuybackInput struct {
	Flow   Flow
	Device Device

	TurnsOn    bool
	Works      bool // powers on and functions correctly
	IsUnlocked bool // no carrier or account lock

	Screen    ScreenState
	Body      BodyState
	Battery   BatteryHealth
	Biometric BiometricState
}

// Fallback repair references and fixed penalties, in euros. Used when the
// device catalog has no seeded repair price to anchor a damage deduction on.
var (
	defaultScreenRepairPrice = decimal.NewFromInt(150)
	defaultBodyRepairPrice   = decimal.NewFromInt(80)
	defaultBatteryPrice      = decimal.NewFromInt(60)

	biometricPenalty     = decimal.NewFromInt(90)
	bodyLightWearPenalty = decimal.NewFromInt(20)
	structuralPenalty    = decimal.NewFromInt(40)

	half           = decimal.NewFromFloat(0.5)
	screenLightPct = decimal.NewFromFloat(0.3)
)

// appleBrand is the one brand whose devices expose battery-health and
// biometric-sensor signals the intake form can ask about.
const appleBrand = "apple"

// CalculateBuybackPrice turns a declared condition and the device's reference
// prices into a single non-negative offer in whole euros.
//
// The pipeline order is load-bearing for money correctness: hard gates first,
// then the 50% functional haircut, then brand-specific and cosmetic
// deductions, then round and floor. Deductions may drive the running amount
// negative before the final floor; a device with compounding defects must
// bottom out at zero, never a negative credit.
func CalculateBuybackPrice(in BuybackInput, cat Catalog) int64 {
	if !in.Device.complete() {
		return 0
	}

	price, ok := cat.storagePrice(in.Device.Storage)
	if !ok {
		// Exact storage pricing may not be seeded yet; offer the optimistic
		// upper bound across all tiers for the device.
		price = cat.maxBuybackPrice()
	}

	// Damage deductions are anchored on what the matching repair would cost.
	screenRef, found := cat.minPositiveScreenPrice()
	if !found {
		screenRef = defaultScreenRepairPrice
	}
	bodyRef := cat.RepairPrice(IssueBackCover)
	if !bodyRef.GreaterThan(decimal.Zero) {
		bodyRef = defaultBodyRepairPrice
	}
	batteryRef := cat.RepairPrice(IssueBattery)
	if !batteryRef.GreaterThan(decimal.Zero) {
		batteryRef = defaultBatteryPrice
	}

	// Hard gates. A dead or locked device is worth nothing regardless of any
	// other flag; a working-but-faulty one keeps half its base value and the
	// haircut stacks with the deductions below.
	if !in.TurnsOn {
		price = decimal.Zero
	}
	if !in.IsUnlocked {
		price = decimal.Zero
	}
	if in.TurnsOn && !in.Works {
		price = price.Mul(half)
	}

	if in.Device.Brand == appleBrand && (in.Device.Type == DeviceSmartphone || in.Device.Type == DeviceTablet) {
		if in.Battery == BatteryService {
			price = price.Sub(batteryRef)
		}
		if in.Biometric == BiometricFaulty {
			price = price.Sub(biometricPenalty)
		}
	}

	switch in.Screen {
	case ScreenLightDamage:
		price = price.Sub(screenRef.Mul(screenLightPct))
	case ScreenCracked:
		price = price.Sub(screenRef)
	}

	switch in.Body {
	case BodyLightDamage:
		price = price.Sub(bodyLightWearPenalty)
	case BodyDents:
		price = price.Sub(bodyRef)
	case BodyBent:
		price = price.Sub(bodyRef).Sub(structuralPenalty)
	}

	rounded := price.Round(0).IntPart()
	if rounded < 0 {
		return 0
	}
	return rounded
}
