package order

import "testing"

func allStatuses() []Status {
	out := make([]Status, 0, len(labels))
	for s := range labels {
		out = append(out, s)
	}
	return out
}

func TestCanTransition_NoSelfLoops(t *testing.T) {
	for _, s := range allStatuses() {
		if CanTransition(s, s) {
			t.Fatalf("self transition allowed for %s", s)
		}
	}
}

func TestCanTransition_TerminalStatusesHaveNoExits(t *testing.T) {
	terminals := []Status{StatusCompleted, StatusCancelled, StatusClosed}
	for _, term := range terminals {
		for _, to := range allStatuses() {
			if CanTransition(term, to) {
				t.Fatalf("terminal %s may not transition to %s", term, to)
			}
		}
		if !IsTerminal(term) {
			t.Fatalf("expected %s to be terminal", term)
		}
	}
}

func TestCanTransition_UnknownFromFailsClosed(t *testing.T) {
	if CanTransition(Status("teleported"), StatusNew) {
		t.Fatalf("unknown status must fail closed")
	}
}

func TestCanTransition_IssueNeverReachesPaidOrCompleted(t *testing.T) {
	for _, to := range []Status{StatusPaid, StatusCompleted, StatusShipped, StatusPaymentQueued, StatusInvoiced} {
		if CanTransition(StatusIssue, to) {
			t.Fatalf("issue must not transition directly to %s", to)
		}
	}
}

func TestCanTransition_PartsDelayCycle(t *testing.T) {
	if !CanTransition(StatusInDiagnostic, StatusWaitingParts) {
		t.Fatalf("in_diagnostic -> waiting_parts must be legal")
	}
	if !CanTransition(StatusWaitingParts, StatusInDiagnostic) {
		t.Fatalf("waiting_parts -> in_diagnostic must be legal (parts delay)")
	}
}

func TestCanTransition_LegacyStatusesStillControllable(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusProcessing, StatusVerified, true},
		{StatusProcessing, StatusPaid, false},
		{StatusRepaired, StatusCompleted, true},
		{StatusPaymentSent, StatusCompleted, true},
		{StatusClosed, StatusNew, false},
		{StatusInspected, StatusInvoiced, true},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestProgress_NonDecreasingAlongHappyPaths(t *testing.T) {
	paths := [][]Status{
		// Buyback: drop-off, diagnostic, payout.
		{StatusNew, StatusPendingDrop, StatusReceived, StatusInDiagnostic, StatusVerified, StatusPaymentQueued, StatusPaid, StatusCompleted},
		// Repair: diagnostic, invoice, repair, ship.
		{StatusNew, StatusReceived, StatusInDiagnostic, StatusVerified, StatusInvoiced, StatusPaid, StatusInRepair, StatusReady, StatusShipped, StatusCompleted},
	}
	for _, path := range paths {
		prev := -1
		for i, s := range path {
			if i > 0 && !CanTransition(path[i-1], s) {
				t.Fatalf("path step %s -> %s is not a legal transition", path[i-1], s)
			}
			p := Progress(s)
			if p < prev {
				t.Fatalf("progress decreased at %s: %d < %d", s, p, prev)
			}
			prev = p
		}
		if prev != 100 {
			t.Fatalf("path must end at 100, got %d", prev)
		}
	}
}

func TestProgress_Bounds(t *testing.T) {
	for _, s := range allStatuses() {
		p := Progress(s)
		if p < 0 || p > 100 {
			t.Fatalf("progress out of range for %s: %d", s, p)
		}
	}
	if Progress(Status("bogus")) != 0 {
		t.Fatalf("unknown status must report progress 0")
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("in_repair"); err != nil {
		t.Fatalf("canonical status rejected: %v", err)
	}
	if _, err := ParseStatus("payment_sent"); err != nil {
		t.Fatalf("legacy status rejected: %v", err)
	}
	if _, err := ParseStatus("exploded"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestLabel_FallbacksAndLanguages(t *testing.T) {
	if got := Label(StatusInRepair, LangNL); got != "In reparatie" {
		t.Fatalf("nl label mismatch: %q", got)
	}
	if got := Label(StatusInRepair, LangEN); got != "In repair" {
		t.Fatalf("en label mismatch: %q", got)
	}
	// Unsupported language falls back to the default (fr).
	if got := Label(StatusInRepair, Lang("de")); got != "En réparation" {
		t.Fatalf("fallback label mismatch: %q", got)
	}
	// Unknown status echoes the raw tag.
	if got := Label(Status("bogus"), LangFR); got != "bogus" {
		t.Fatalf("unknown status must echo tag, got %q", got)
	}
}
