package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testDevice() Device {
	return Device{Brand: "apple", Model: "iPhone 13", Type: DeviceSmartphone, Storage: "128GB"}
}

func testCatalog() Catalog {
	return Catalog{
		Buyback: []BuybackRecord{
			{Storage: "64GB", Condition: "good", Price: decimal.NewFromInt(320)},
			{Storage: "128GB", Condition: "good", Price: decimal.NewFromInt(400)},
			{Storage: "256GB", Condition: "good", Price: decimal.NewFromInt(450)},
		},
		Repair: map[string]decimal.Decimal{
			"screen:original": decimal.NewFromInt(200),
			"screen:premium":  decimal.NewFromInt(160),
			"screen:standard": decimal.NewFromInt(120),
			"battery":         decimal.NewFromInt(60),
			"back_cover":      decimal.NewFromInt(100),
			"charging_port":   decimal.NewFromInt(70),
		},
	}
}

func workingInput() BuybackInput {
	return BuybackInput{
		Flow:       FlowBuyback,
		Device:     testDevice(),
		TurnsOn:    true,
		Works:      true,
		IsUnlocked: true,
		Screen:     ScreenIntact,
		Body:       BodyIntact,
		Battery:    BatteryGood,
		Biometric:  BiometricWorking,
	}
}

func TestCalculateBuybackPrice_BasePriceByStorage(t *testing.T) {
	if got := CalculateBuybackPrice(workingInput(), testCatalog()); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestCalculateBuybackPrice_MissingStorageFallsBackToMax(t *testing.T) {
	in := workingInput()
	in.Device.Storage = "1TB"
	if got := CalculateBuybackPrice(in, testCatalog()); got != 450 {
		t.Fatalf("expected optimistic max 450, got %d", got)
	}
}

func TestCalculateBuybackPrice_MissingIdentityReturnsZero(t *testing.T) {
	in := workingInput()
	in.Device.Model = ""
	if got := CalculateBuybackPrice(in, testCatalog()); got != 0 {
		t.Fatalf("expected 0 for incomplete identity, got %d", got)
	}
}

func TestCalculateBuybackPrice_DeadDeviceDominatesEverything(t *testing.T) {
	in := workingInput()
	in.TurnsOn = false
	// Pile on every positive-looking flag; the gate must still win.
	in.Works = true
	in.Screen = ScreenIntact
	in.Body = BodyIntact
	if got := CalculateBuybackPrice(in, testCatalog()); got != 0 {
		t.Fatalf("dead device must price at 0, got %d", got)
	}
}

func TestCalculateBuybackPrice_LockedDeviceIsWorthless(t *testing.T) {
	in := workingInput()
	in.IsUnlocked = false
	if got := CalculateBuybackPrice(in, testCatalog()); got != 0 {
		t.Fatalf("locked device must price at 0, got %d", got)
	}
}

func TestCalculateBuybackPrice_FaultyDeviceHalvesBase(t *testing.T) {
	in := workingInput()
	in.Works = false
	if got := CalculateBuybackPrice(in, testCatalog()); got != 200 {
		t.Fatalf("expected 50%% haircut to 200, got %d", got)
	}
}

func TestCalculateBuybackPrice_HalvingStacksWithDeductions(t *testing.T) {
	in := workingInput()
	in.Works = false
	in.Screen = ScreenCracked
	// 400*0.5 - 120 (min positive screen tier) = 80.
	if got := CalculateBuybackPrice(in, testCatalog()); got != 80 {
		t.Fatalf("expected 80, got %d", got)
	}
}

func TestCalculateBuybackPrice_ServiceBatteryDeductsBatteryRef(t *testing.T) {
	in := workingInput()
	in.Battery = BatteryService
	// 400 - 60 = 340.
	if got := CalculateBuybackPrice(in, testCatalog()); got != 340 {
		t.Fatalf("expected 340, got %d", got)
	}
}

func TestCalculateBuybackPrice_BatteryDeductionIsAppleOnly(t *testing.T) {
	in := workingInput()
	in.Battery = BatteryService
	in.Device.Brand = "samsung"
	if got := CalculateBuybackPrice(in, testCatalog()); got != 400 {
		t.Fatalf("battery deduction must not apply to samsung, got %d", got)
	}

	in = workingInput()
	in.Battery = BatteryService
	in.Device.Type = DeviceLaptop
	if got := CalculateBuybackPrice(in, testCatalog()); got != 400 {
		t.Fatalf("battery deduction must not apply to laptops, got %d", got)
	}
}

func TestCalculateBuybackPrice_BiometricPenalty(t *testing.T) {
	in := workingInput()
	in.Biometric = BiometricFaulty
	// 400 - 90 = 310.
	if got := CalculateBuybackPrice(in, testCatalog()); got != 310 {
		t.Fatalf("expected 310, got %d", got)
	}
}

func TestCalculateBuybackPrice_ScreenTiersAreExclusive(t *testing.T) {
	light := workingInput()
	light.Screen = ScreenLightDamage
	// 400 - 0.3*120 = 364.
	if got := CalculateBuybackPrice(light, testCatalog()); got != 364 {
		t.Fatalf("light damage: expected 364, got %d", got)
	}

	cracked := workingInput()
	cracked.Screen = ScreenCracked
	// 400 - 120 = 280.
	if got := CalculateBuybackPrice(cracked, testCatalog()); got != 280 {
		t.Fatalf("cracked: expected 280, got %d", got)
	}
}

func TestCalculateBuybackPrice_BodyStates(t *testing.T) {
	cat := testCatalog()

	light := workingInput()
	light.Body = BodyLightDamage
	if got := CalculateBuybackPrice(light, cat); got != 380 {
		t.Fatalf("light body wear: expected 380, got %d", got)
	}

	dents := workingInput()
	dents.Body = BodyDents
	// 400 - 100 (back_cover) = 300.
	if got := CalculateBuybackPrice(dents, cat); got != 300 {
		t.Fatalf("dents: expected 300, got %d", got)
	}

	bent := workingInput()
	bent.Body = BodyBent
	// 400 - 100 - 40 = 260.
	if got := CalculateBuybackPrice(bent, cat); got != 260 {
		t.Fatalf("bent: expected 260, got %d", got)
	}
}

func TestCalculateBuybackPrice_DefaultReferencesWhenRepairUnseeded(t *testing.T) {
	cat := testCatalog()
	cat.Repair = nil

	in := workingInput()
	in.Screen = ScreenCracked
	in.Body = BodyBent
	in.Battery = BatteryService
	// 400 - 150 (screen default) - 80 - 40 (body default + structural) - 60 (battery default) = 70.
	if got := CalculateBuybackPrice(in, cat); got != 70 {
		t.Fatalf("expected 70 with default references, got %d", got)
	}
}

func TestCalculateBuybackPrice_NeverNegative(t *testing.T) {
	// Cheap device with every compounding defect.
	cat := Catalog{
		Buyback: []BuybackRecord{{Storage: "64GB", Condition: "good", Price: decimal.NewFromInt(50)}},
		Repair:  testCatalog().Repair,
	}
	in := workingInput()
	in.Device.Storage = "64GB"
	in.Works = false
	in.Screen = ScreenCracked
	in.Body = BodyBent
	in.Battery = BatteryService
	in.Biometric = BiometricFaulty
	if got := CalculateBuybackPrice(in, cat); got != 0 {
		t.Fatalf("floor property violated: got %d", got)
	}
}

func TestCalculateBuybackPrice_Deterministic(t *testing.T) {
	in := workingInput()
	in.Screen = ScreenLightDamage
	in.Battery = BatteryService
	cat := testCatalog()
	first := CalculateBuybackPrice(in, cat)
	for i := 0; i < 10; i++ {
		if got := CalculateBuybackPrice(in, cat); got != first {
			t.Fatalf("non-deterministic result: %d != %d", got, first)
		}
	}
}
