package track

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/events"
	"github.com/tovrr/belmobile-backend/internal/order"
	"github.com/tovrr/belmobile-backend/pkg/config"
)

// Handlers serves the public, token-based order tracking page used by a
// separate frontend domain. No staff identity here; the token is the
// capability.
type Handlers struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Orders *order.Repository
}

func (h Handlers) lang(r *http.Request) order.Lang {
	if raw := r.URL.Query().Get("lang"); raw != "" {
		return order.Lang(raw)
	}
	if h.Cfg.DefaultLang != "" {
		return order.Lang(h.Cfg.DefaultLang)
	}
	return order.DefaultLang
}

func (h Handlers) View(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing token")
		return
	}

	o, err := h.Orders.FindByTrackToken(r.Context(), token)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	lang := h.lang(r)

	// Customer-facing view: no internal identifiers beyond the display id.
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"displayId":   o.DisplayID,
		"flow":        o.Flow,
		"deviceBrand": o.DeviceBrand,
		"deviceModel": o.DeviceModel,
		"status":      o.Status,
		"label":       order.Label(o.Status, lang),
		"progress":    order.Progress(o.Status),
		"amount":      o.Amount,
		"currency":    o.Currency,
		"manualQuote": o.ManualQuote,
	})
}

func (h Handlers) Events(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing token")
		return
	}

	o, err := h.Orders.FindByTrackToken(r.Context(), token)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	evs, err := events.ListByOrder(r.Context(), h.DB, o.ID)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": evs})
}
