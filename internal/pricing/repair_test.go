package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func repairInput(issues ...Issue) RepairInput {
	return RepairInput{
		Flow:          FlowRepair,
		Device:        testDevice(),
		Issues:        issues,
		ScreenQuality: QualityOriginal,
		Delivery:      DeliveryDropOff,
	}
}

func TestCalculateRepairPrice_NothingSelectedIsZeroNotManual(t *testing.T) {
	got := CalculateRepairPrice(repairInput(), testCatalog())
	if got.ManualQuote {
		t.Fatalf("empty selection must not require a manual quote")
	}
	if got.Amount != 0 {
		t.Fatalf("empty selection must price at 0, got %d", got.Amount)
	}
}

func TestCalculateRepairPrice_WrongFlowIsZero(t *testing.T) {
	in := repairInput(IssueBattery)
	in.Flow = FlowBuyback
	if got := CalculateRepairPrice(in, testCatalog()); got.ManualQuote || got.Amount != 0 {
		t.Fatalf("non-repair flow must price at 0, got %+v", got)
	}
}

func TestCalculateRepairPrice_MissingIdentityIsZero(t *testing.T) {
	in := repairInput(IssueBattery)
	in.Device.Brand = ""
	if got := CalculateRepairPrice(in, testCatalog()); got.ManualQuote || got.Amount != 0 {
		t.Fatalf("incomplete identity must price at 0, got %+v", got)
	}
}

func TestCalculateRepairPrice_ScreenPlusBattery(t *testing.T) {
	got := CalculateRepairPrice(repairInput(IssueScreen, IssueBattery), testCatalog())
	if got.ManualQuote {
		t.Fatalf("unexpected manual quote")
	}
	// 200 (screen original) + 60 (battery) = 260.
	if got.Amount != 260 {
		t.Fatalf("expected 260, got %d", got.Amount)
	}
}

func TestCalculateRepairPrice_ScreenQualityFallback(t *testing.T) {
	cat := testCatalog()
	cat.Repair["screen:premium"] = decimal.Zero

	in := repairInput(IssueScreen)
	in.ScreenQuality = QualityPremium
	got := CalculateRepairPrice(in, cat)
	if got.ManualQuote {
		t.Fatalf("fallback tier should have priced the screen")
	}
	// Premium unseeded; fixed priority falls back to original (200).
	if got.Amount != 200 {
		t.Fatalf("expected fallback to original at 200, got %d", got.Amount)
	}
}

func TestCalculateRepairPrice_AllScreenTiersUnseededIsManual(t *testing.T) {
	cat := testCatalog()
	cat.Repair["screen:original"] = decimal.Zero
	cat.Repair["screen:premium"] = decimal.Zero
	delete(cat.Repair, "screen:standard")

	got := CalculateRepairPrice(repairInput(IssueScreen), cat)
	if !got.ManualQuote {
		t.Fatalf("expected manual quote when no screen tier is seeded")
	}
}

func TestCalculateRepairPrice_MissingIssuePriceIsManualEvenWithValidOthers(t *testing.T) {
	got := CalculateRepairPrice(repairInput(IssueBattery, IssueWaterDamage), testCatalog())
	if !got.ManualQuote {
		t.Fatalf("a single unpriced issue must invalidate the whole quote")
	}
}

func TestCalculateRepairPrice_ProtectiveFilmAddOn(t *testing.T) {
	in := repairInput(IssueBattery)
	in.ProtectiveFilm = true
	got := CalculateRepairPrice(in, testCatalog())
	// 60 + 15 = 75.
	if got.ManualQuote || got.Amount != 75 {
		t.Fatalf("expected 75, got %+v", got)
	}
}

func TestCalculateRepairPrice_ExpressCourierFee(t *testing.T) {
	in := repairInput(IssueBattery)
	in.Delivery = DeliveryCourier
	in.CourierTier = CourierExpress
	got := CalculateRepairPrice(in, testCatalog())
	// 60 + 10 = 70.
	if got.ManualQuote || got.Amount != 70 {
		t.Fatalf("expected 70, got %+v", got)
	}

	// Standard courier adds nothing.
	in.CourierTier = CourierStandard
	got = CalculateRepairPrice(in, testCatalog())
	if got.ManualQuote || got.Amount != 60 {
		t.Fatalf("standard courier must not add a fee, got %+v", got)
	}

	// Express tier without courier delivery adds nothing.
	in.Delivery = DeliveryDropOff
	in.CourierTier = CourierExpress
	got = CalculateRepairPrice(in, testCatalog())
	if got.ManualQuote || got.Amount != 60 {
		t.Fatalf("express without courier must not add a fee, got %+v", got)
	}
}

func TestCalculateRepairPrice_MultiIssueSum(t *testing.T) {
	got := CalculateRepairPrice(repairInput(IssueScreen, IssueBattery, IssueBackCover, IssueChargingPort), testCatalog())
	// 200 + 60 + 100 + 70 = 430.
	if got.ManualQuote || got.Amount != 430 {
		t.Fatalf("expected 430, got %+v", got)
	}
}

func TestCalculateRepairPrice_Deterministic(t *testing.T) {
	in := repairInput(IssueScreen, IssueBattery)
	in.ProtectiveFilm = true
	cat := testCatalog()
	first := CalculateRepairPrice(in, cat)
	for i := 0; i < 10; i++ {
		if got := CalculateRepairPrice(in, cat); got != first {
			t.Fatalf("non-deterministic result: %+v != %+v", got, first)
		}
	}
}
