package order

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tovrr/belmobile-backend/internal/adminaction"
	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/audit"
	"github.com/tovrr/belmobile-backend/internal/events"
	"github.com/tovrr/belmobile-backend/pkg/db"
)

type AdminOverrideRequest struct {
	ActionType string `json:"actionType"`
	Reason     string `json:"reason"`
	Status     string `json:"status,omitempty"`
}

// AdminOverride applies a privileged status change that bypasses the
// transition table. Every override requires a reason and is audited; this is
// the escape hatch for data fixes, not a normal lifecycle path.
func (h Handlers) AdminOverride(w http.ResponseWriter, r *http.Request) {
	staff := api.StaffFromContext(r.Context())
	if staff == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing staff identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	var req AdminOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.Reason == "" {
		api.WriteError(w, http.StatusBadRequest, "OVERRIDE_REASON_REQUIRED", "reason is required")
		return
	}

	action := adminaction.ActionType(req.ActionType)
	switch action {
	case adminaction.ActionForceStatus, adminaction.ActionReopenOrder, adminaction.ActionMarkPaidManually:
	default:
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid actionType")
		return
	}

	err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		o, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}

		var next Status
		switch action {
		case adminaction.ActionForceStatus:
			next, err = ParseStatus(req.Status)
			if err != nil {
				api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
				return pgx.ErrTxCommitRollback
			}
		case adminaction.ActionReopenOrder:
			if !IsTerminal(o.Status) {
				api.WriteError(w, http.StatusConflict, "ORDER_NOT_TERMINAL", "only terminal orders can be reopened")
				return pgx.ErrTxCommitRollback
			}
			next = StatusInDiagnostic
		case adminaction.ActionMarkPaidManually:
			next = StatusPaid
		}

		if err := UpdateStatus(r.Context(), tx, o.ID, next); err != nil {
			return err
		}

		now := time.Now()
		oID := o.ID
		_ = adminaction.Insert(r.Context(), tx, o.ID, action, req.Reason, staff.Email, map[string]any{"from": o.Status, "to": next})
		_ = audit.Insert(r.Context(), tx, &oID, "ADMIN_OVERRIDE", staff.Email, map[string]any{"actionType": action, "reason": req.Reason, "from": o.Status, "to": next})
		_ = events.Insert(r.Context(), tx, o.ID, "ADMIN_OVERRIDE", "Admin override applied", staff.Email, now, map[string]any{"actionType": action, "reason": req.Reason})

		return nil
	})

	if err != nil {
		if err == pgx.ErrTxCommitRollback {
			return
		}
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
