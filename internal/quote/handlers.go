package quote

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/catalog"
	"github.com/tovrr/belmobile-backend/internal/order"
	"github.com/tovrr/belmobile-backend/internal/pricing"
)

type Handlers struct {
	Quotes   *Repository
	Catalogs *catalog.Repository
	Orders   *order.Repository
}

type deviceDTO struct {
	DeviceID string `json:"deviceId"` // catalog slug, e.g. "apple-iphone-13"
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Type     string `json:"type"`
	Storage  string `json:"storage,omitempty"`
}

func (d deviceDTO) toDevice() pricing.Device {
	return pricing.Device{
		Brand:   d.Brand,
		Model:   d.Model,
		Type:    pricing.DeviceType(d.Type),
		Storage: d.Storage,
	}
}

type BuybackRequest struct {
	Device deviceDTO `json:"device"`

	TurnsOn    bool `json:"turnsOn"`
	Works      bool `json:"works"`
	IsUnlocked bool `json:"isUnlocked"`

	Screen    string `json:"screen,omitempty"`
	Body      string `json:"body,omitempty"`
	Battery   string `json:"battery,omitempty"`
	Biometric string `json:"biometric,omitempty"`
}

type RepairRequest struct {
	Device deviceDTO `json:"device"`

	Issues         []string `json:"issues"`
	ScreenQuality  string   `json:"screenQuality,omitempty"`
	ProtectiveFilm bool     `json:"protectiveFilm"`
	Delivery       string   `json:"delivery,omitempty"`
	CourierTier    string   `json:"courierTier,omitempty"`
}

type quoteResponse struct {
	QuoteID     string `json:"quoteId"`
	Amount      *int64 `json:"amount,omitempty"`
	Currency    string `json:"currency"`
	ManualQuote bool   `json:"manualQuote"`
}

// Buyback prices a buyback request against the device's catalog and persists
// the resulting quote. An unseeded device prices like an empty catalog; the
// engine's own rules decide what that is worth.
func (h Handlers) Buyback(w http.ResponseWriter, r *http.Request) {
	var req BuybackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	cat, currency := h.loadCatalog(r, req.Device.DeviceID)

	in := pricing.BuybackInput{
		Flow:       pricing.FlowBuyback,
		Device:     req.Device.toDevice(),
		TurnsOn:    req.TurnsOn,
		Works:      req.Works,
		IsUnlocked: req.IsUnlocked,
		Screen:     pricing.ScreenState(req.Screen),
		Body:       pricing.BodyState(req.Body),
		Battery:    pricing.BatteryHealth(req.Battery),
		Biometric:  pricing.BiometricState(req.Biometric),
	}
	amount := pricing.CalculateBuybackPrice(in, cat)

	raw, _ := json.Marshal(req)
	saved, err := h.Quotes.Create(r.Context(), Quote{
		ID:       uuid.NewString(),
		Flow:     pricing.FlowBuyback,
		DeviceID: req.Device.DeviceID,
		Request:  raw,
		Amount:   &amount,
		Currency: currency,
	})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, quoteResponse{
		QuoteID:  saved.ID,
		Amount:   saved.Amount,
		Currency: saved.Currency,
	})
}

// Repair prices a repair selection. A selection the catalog cannot price is
// persisted as a manual quote, not an error: the storefront swaps the price
// for a "request a quote" call-to-action.
func (h Handlers) Repair(w http.ResponseWriter, r *http.Request) {
	var req RepairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	cat, currency := h.loadCatalog(r, req.Device.DeviceID)

	issues := make([]pricing.Issue, 0, len(req.Issues))
	for _, raw := range req.Issues {
		issues = append(issues, pricing.Issue(raw))
	}

	in := pricing.RepairInput{
		Flow:           pricing.FlowRepair,
		Device:         req.Device.toDevice(),
		Issues:         issues,
		ScreenQuality:  pricing.ScreenQuality(req.ScreenQuality),
		ProtectiveFilm: req.ProtectiveFilm,
		Delivery:       pricing.DeliveryMethod(req.Delivery),
		CourierTier:    pricing.CourierTier(req.CourierTier),
	}
	result := pricing.CalculateRepairPrice(in, cat)

	q := Quote{
		ID:          uuid.NewString(),
		Flow:        pricing.FlowRepair,
		DeviceID:    req.Device.DeviceID,
		Currency:    currency,
		ManualQuote: result.ManualQuote,
	}
	q.Request, _ = json.Marshal(req)
	if !result.ManualQuote {
		amount := result.Amount
		q.Amount = &amount
	}

	saved, err := h.Quotes.Create(r.Context(), q)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, quoteResponse{
		QuoteID:     saved.ID,
		Amount:      saved.Amount,
		Currency:    saved.Currency,
		ManualQuote: saved.ManualQuote,
	})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}
	q, err := h.Quotes.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "quote not found")
		return
	}
	api.WriteJSON(w, http.StatusOK, q)
}

type ConfirmRequest struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName,omitempty"`
}

// Confirm turns an accepted quote into an order in status `new`, minting the
// tracking token the customer follows the order with. Manual quotes confirm
// too; they enter the lifecycle without a committed amount.
func (h Handlers) Confirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.CustomerEmail == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "customerEmail is required")
		return
	}

	q, err := h.Quotes.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "quote not found")
		return
	}

	var dev deviceDTO
	switch q.Flow {
	case pricing.FlowBuyback:
		var br BuybackRequest
		if err := json.Unmarshal(q.Request, &br); err == nil {
			dev = br.Device
		}
	case pricing.FlowRepair:
		var rr RepairRequest
		if err := json.Unmarshal(q.Request, &rr); err == nil {
			dev = rr.Device
		}
	}

	amount := "0"
	if q.Amount != nil {
		amount = strconv.FormatInt(*q.Amount, 10)
	}

	o, err := h.Orders.Create(r.Context(), order.CreateParams{
		Flow:          q.Flow,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Device:        dev.toDevice(),
		Amount:        amount,
		Currency:      q.Currency,
		ManualQuote:   q.ManualQuote,
		TrackToken:    uuid.NewString(),
	})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"orderId":    o.ID,
		"displayId":  o.DisplayID,
		"trackToken": o.TrackToken,
		"status":     o.Status,
	})
}

// loadCatalog resolves the device catalog, falling back to an empty catalog
// when the device has no seeded prices yet.
func (h Handlers) loadCatalog(r *http.Request, deviceID string) (pricing.Catalog, string) {
	currency := "EUR"
	if deviceID == "" {
		return pricing.Catalog{}, currency
	}
	cfg, err := h.Catalogs.Load(r.Context(), deviceID)
	if err != nil {
		return pricing.Catalog{}, currency
	}
	if cfg.Currency != "" {
		currency = cfg.Currency
	}
	return cfg.Catalog, currency
}
