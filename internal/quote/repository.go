package quote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/pricing"
)

// Quote is a persisted pricing result. ManualQuote quotes carry no amount;
// they wait for a human offer.
type Quote struct {
	ID          string          `json:"id"`
	Flow        pricing.Flow    `json:"flow"`
	DeviceID    string          `json:"deviceId"`
	Request     json.RawMessage `json:"request"`
	Amount      *int64          `json:"amount,omitempty"`
	Currency    string          `json:"currency"`
	ManualQuote bool            `json:"manualQuote"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, q Quote) (*Quote, error) {
	const sql = `
INSERT INTO quotes (id, flow, device_id, request, amount, currency, manual_quote)
VALUES ($1, $2, $3, CAST($4 AS jsonb), $5, $6, $7)
RETURNING id, flow, device_id, request, amount, currency, manual_quote, created_at
`
	out := &Quote{}
	if err := r.db.QueryRow(ctx, sql,
		q.ID, string(q.Flow), q.DeviceID, string(q.Request), q.Amount, q.Currency, q.ManualQuote,
	).Scan(
		&out.ID, &out.Flow, &out.DeviceID, &out.Request, &out.Amount, &out.Currency, &out.ManualQuote, &out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Quote, error) {
	const sql = `
SELECT id, flow, device_id, request, amount, currency, manual_quote, created_at
FROM quotes
WHERE id = $1
`
	out := &Quote{}
	if err := r.db.QueryRow(ctx, sql, id).Scan(
		&out.ID, &out.Flow, &out.DeviceID, &out.Request, &out.Amount, &out.Currency, &out.ManualQuote, &out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return out, nil
}
