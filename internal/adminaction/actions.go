package adminaction

type ActionType string

const (
	ActionForceStatus      ActionType = "FORCE_STATUS"
	ActionReopenOrder      ActionType = "REOPEN_ORDER"
	ActionMarkPaidManually ActionType = "MARK_PAID_MANUALLY"
)
