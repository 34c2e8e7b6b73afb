package shipping

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/api"
	"github.com/tovrr/belmobile-backend/internal/audit"
	"github.com/tovrr/belmobile-backend/internal/events"
	"github.com/tovrr/belmobile-backend/internal/order"
	"github.com/tovrr/belmobile-backend/pkg/config"
	"github.com/tovrr/belmobile-backend/pkg/db"
)

const signatureHeader = "X-Shipping-Signature"

// ParcelStatus is the carrier's vocabulary for a tracked parcel.
type ParcelStatus string

const (
	ParcelAnnounced     ParcelStatus = "announced"       // label created, parcel on its way to us
	ParcelShipped       ParcelStatus = "shipped"         // outbound parcel handed to the carrier
	ParcelDelivered     ParcelStatus = "delivered"       // outbound parcel delivered to the customer
	ParcelAtDropPoint   ParcelStatus = "at_drop_point"   // inbound parcel waiting at a drop point
	ParcelReceivedAtHub ParcelStatus = "received_at_hub" // inbound parcel arrived at the workshop
)

// parcelTransitions maps a carrier status to the order status it implies. The
// lifecycle table still decides whether the transition applies; a carrier
// event that does not fit the order's current status is ignored, not failed,
// so the carrier does not retry a business no-op.
var parcelTransitions = map[ParcelStatus]order.Status{
	ParcelAnnounced:     order.StatusPendingDrop,
	ParcelAtDropPoint:   order.StatusPendingDrop,
	ParcelReceivedAtHub: order.StatusReceived,
	ParcelShipped:       order.StatusShipped,
	ParcelDelivered:     order.StatusCompleted,
}

type Handler struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

type webhookPayload struct {
	TrackingNumber string       `json:"trackingNumber"`
	OrderToken     string       `json:"orderToken"`
	Status         ParcelStatus `json:"status"`
	OccurredAt     time.Time    `json:"occurredAt"`
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "unreadable body")
		return
	}

	if !VerifySignature(body, r.Header.Get(signatureHeader), h.Cfg.Shipping.WebhookSecret) {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid signature")
		return
	}

	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if p.OrderToken == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing orderToken")
		return
	}

	target, ok := parcelTransitions[p.Status]
	if !ok {
		// Unknown carrier statuses are acknowledged and dropped.
		w.WriteHeader(http.StatusOK)
		return
	}

	occurredAt := p.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		o, err := order.GetForUpdateByTrackToken(r.Context(), tx, p.OrderToken)
		if err != nil {
			return err
		}

		if o.Status == target || !order.CanTransition(o.Status, target) {
			// Duplicate delivery or an event that does not fit the current
			// lifecycle phase. Acknowledge without changing anything.
			log.Printf("[shipping] ignoring %s for order %s in status %s", p.Status, o.ID, o.Status)
			return nil
		}

		if err := order.UpdateStatus(r.Context(), tx, o.ID, target); err != nil {
			return err
		}

		oID := o.ID
		meta := map[string]any{"from": o.Status, "to": target, "parcelStatus": p.Status, "trackingNumber": p.TrackingNumber}
		_ = audit.Insert(r.Context(), tx, &oID, "STATUS_CHANGED", "carrier", meta)
		_ = events.Insert(r.Context(), tx, o.ID, "PARCEL_UPDATE", "Carrier update", "carrier", occurredAt, meta)

		return nil
	})

	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "order not found")
		return
	}

	w.WriteHeader(http.StatusOK)
}
