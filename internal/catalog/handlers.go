package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tovrr/belmobile-backend/internal/api"
)

type Handlers struct {
	Repo *Repository
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h Handlers) Put(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	if deviceID == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing device_id")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unreadable body")
		return
	}

	cfg, err := ParseAndValidate(body)
	if err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			api.WriteError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid catalog config")
		return
	}

	// Store the normalized form so defaults (version, currency) are explicit.
	normalized, _ := json.Marshal(cfg)
	rec, err := h.Repo.Upsert(r.Context(), deviceID, normalized)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, rec)
}
