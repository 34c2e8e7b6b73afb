package order

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/audit"
	"github.com/tovrr/belmobile-backend/internal/events"
	"github.com/tovrr/belmobile-backend/pkg/db"
)

type Handlers struct {
	DB     *pgxpool.Pool
	Orders *Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	staff := api.StaffFromContext(r.Context())
	if staff == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing staff identity")
		return
	}

	var status Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s, err := ParseStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status filter")
			return
		}
		status = s
	}

	items, err := h.Orders.List(r.Context(), status, 0)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
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

	o, err := h.Orders.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	lang := Lang(r.URL.Query().Get("lang"))

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"order":    o,
		"label":    Label(o.Status, lang),
		"progress": Progress(o.Status),
	})
}

type PatchStatusRequest struct {
	Status string `json:"status"`
}

// PatchStatus moves an order to a new lifecycle status. The transition table
// decides legality; re-saving the current status is treated as an idempotent
// no-op rather than a transition.
func (h Handlers) PatchStatus(w http.ResponseWriter, r *http.Request) {
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

	var req PatchStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	next, err := ParseStatus(req.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		o, err := GetForUpdate(r.Context(), tx, id)
		if err != nil {
			return err
		}

		// Idempotent re-save; the table itself allows no self-loops.
		if o.Status == next {
			w.WriteHeader(http.StatusNoContent)
			return pgx.ErrTxCommitRollback
		}

		if !CanTransition(o.Status, next) {
			api.WriteError(w, http.StatusConflict, "INVALID_STATE_TRANSITION", "invalid state transition")
			return pgx.ErrTxCommitRollback
		}

		if err := UpdateStatus(r.Context(), tx, o.ID, next); err != nil {
			return err
		}

		oID := o.ID
		_ = audit.Insert(r.Context(), tx, &oID, "STATUS_CHANGED", staff.Email, map[string]any{"from": o.Status, "to": next})
		_ = events.Insert(r.Context(), tx, o.ID, "STATUS_CHANGED", "Status changed", staff.Email, time.Now(), map[string]any{"from": o.Status, "to": next})

		return nil
	})

	if err != nil {
		// If we used pgx.ErrTxCommitRollback to early-return after writing response, ignore.
		if err == pgx.ErrTxCommitRollback {
			return
		}
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) Events(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.Orders.GetByID(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	evs, err := events.ListByOrder(r.Context(), h.DB, id)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": evs})
}

// Statuses lists every status with its localized label and progress value so
// admin UIs render from the same table the backend enforces.
func (h Handlers) Statuses(w http.ResponseWriter, r *http.Request) {
	lang := Lang(r.URL.Query().Get("lang"))

	type statusInfo struct {
		Status   Status   `json:"status"`
		Label    string   `json:"label"`
		Progress int      `json:"progress"`
		Next     []Status `json:"next"`
	}

	out := make([]statusInfo, 0, len(allowedTransitions))
	for s, next := range allowedTransitions {
		info := statusInfo{Status: s, Label: Label(s, lang), Progress: Progress(s), Next: []Status{}}
		for to := range next {
			info.Next = append(info.Next, to)
		}
		out = append(out, info)
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": out})
}
