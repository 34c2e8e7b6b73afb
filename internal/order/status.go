package order

import "fmt"

type Status string

// Canonical statuses.
const (
	StatusDraft         Status = "draft"
	StatusNew           Status = "new"
	StatusPendingDrop   Status = "pending_drop"
	StatusReceived      Status = "received"
	StatusInDiagnostic  Status = "in_diagnostic"
	StatusWaitingParts  Status = "waiting_parts"
	StatusVerified      Status = "verified"
	StatusPaymentQueued Status = "payment_queued"
	StatusInvoiced      Status = "invoiced"
	StatusPaid          Status = "paid"
	StatusInRepair      Status = "in_repair"
	StatusReady         Status = "ready"
	StatusShipped       Status = "shipped"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusIssue         Status = "issue"
)

// Legacy statuses still present on orders created before the vocabulary change.
// They resolve to labels/progress and keep a narrower transition list so old
// orders stay controllable without a data migration.
const (
	StatusProcessing  Status = "processing"
	StatusHolding     Status = "holding"
	StatusRepaired    Status = "repaired"
	StatusResponded   Status = "responded"
	StatusInspected   Status = "inspected"
	StatusPaymentSent Status = "payment_sent"
	StatusClosed      Status = "closed"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := labels[st]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown status: %s", s)
}

// allowedTransitions is the single source of truth for the order lifecycle.
// Three phases: intake (draft..in_diagnostic), work (waiting_parts/verified/
// in_repair with back-edges for parts delays), financial + fulfillment
// (payment_queued|invoiced -> paid -> ... -> completed). The issue status is a
// universal off-ramp: it only leads back into diagnostic/verification or to
// cancellation, never straight to a paid or completed state.
var allowedTransitions = map[Status]map[Status]bool{
	StatusDraft:       {StatusNew: true, StatusCancelled: true},
	StatusNew:         {StatusPendingDrop: true, StatusReceived: true, StatusCancelled: true},
	StatusPendingDrop: {StatusReceived: true, StatusCancelled: true},
	StatusReceived:    {StatusInDiagnostic: true, StatusCancelled: true},
	StatusInDiagnostic: {
		StatusWaitingParts: true, StatusVerified: true, StatusIssue: true, StatusCancelled: true,
	},
	StatusWaitingParts: {
		StatusInDiagnostic: true, StatusInRepair: true, StatusIssue: true, StatusCancelled: true,
	},
	StatusVerified: {
		StatusPaymentQueued: true, StatusInvoiced: true, StatusInRepair: true,
		StatusIssue: true, StatusCancelled: true,
	},
	StatusPaymentQueued: {StatusPaid: true, StatusIssue: true, StatusCancelled: true},
	StatusInvoiced:      {StatusPaid: true, StatusIssue: true, StatusCancelled: true},
	StatusPaid: {
		StatusInRepair: true, StatusReady: true, StatusShipped: true,
		StatusPaymentSent: true, StatusCompleted: true,
	},
	StatusInRepair:  {StatusReady: true, StatusWaitingParts: true, StatusIssue: true},
	StatusReady:     {StatusShipped: true, StatusCompleted: true},
	StatusShipped:   {StatusCompleted: true},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusIssue:     {StatusInDiagnostic: true, StatusVerified: true, StatusCancelled: true},

	// Legacy orders map into the new graph with narrower lists.
	StatusProcessing:  {StatusVerified: true, StatusIssue: true, StatusCancelled: true},
	StatusHolding:     {StatusInDiagnostic: true, StatusCancelled: true},
	StatusRepaired:    {StatusReady: true, StatusShipped: true, StatusCompleted: true},
	StatusResponded:   {StatusVerified: true, StatusCancelled: true},
	StatusInspected:   {StatusVerified: true, StatusPaymentQueued: true, StatusInvoiced: true, StatusCancelled: true},
	StatusPaymentSent: {StatusCompleted: true},
	StatusClosed:      {},
}

// CanTransition reports whether the lifecycle allows moving from -> to.
// Unknown statuses fail closed. Re-saving the identical status is not a
// transition; callers that want idempotent saves must special-case it.
func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	m, ok := allowedTransitions[s]
	return ok && len(m) == 0
}

// progress is a customer-facing 0..100 display value. It is strictly
// non-decreasing along the forward buyback and repair paths; the re-diagnosis
// cycles the graph allows (waiting_parts <-> in_diagnostic, issue off-ramps)
// necessarily revisit lower values.
var progress = map[Status]int{
	StatusDraft:         0,
	StatusNew:           5,
	StatusPendingDrop:   10,
	StatusReceived:      20,
	StatusInDiagnostic:  30,
	StatusWaitingParts:  35,
	StatusVerified:      45,
	StatusPaymentQueued: 55,
	StatusInvoiced:      55,
	StatusPaid:          65,
	StatusInRepair:      70,
	StatusReady:         85,
	StatusShipped:       95,
	StatusCompleted:     100,
	StatusCancelled:     100,
	StatusIssue:         30,

	StatusProcessing:  30,
	StatusHolding:     35,
	StatusRepaired:    85,
	StatusResponded:   40,
	StatusInspected:   40,
	StatusPaymentSent: 95,
	StatusClosed:      100,
}

// Progress returns the display percentage for a status, 0 for unknown tags.
func Progress(s Status) int {
	return progress[s]
}
