package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tovrr/belmobile-backend/internal/pricing"
)

type Order struct {
	ID            string       `json:"id"`
	DisplayID     string       `json:"displayId"`
	Flow          pricing.Flow `json:"flow"`
	CustomerEmail string       `json:"customerEmail,omitempty"`
	CustomerName  string       `json:"customerName,omitempty"`
	DeviceBrand   string       `json:"deviceBrand"`
	DeviceModel   string       `json:"deviceModel"`
	DeviceType    string       `json:"deviceType"`
	DeviceStorage string       `json:"deviceStorage,omitempty"`
	Amount        string       `json:"amount"`
	Currency      string       `json:"currency"`
	ManualQuote   bool         `json:"manualQuote"`
	Status        Status       `json:"status"`
	TrackToken    string       `json:"-"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const orderColumns = `
id, display_id, flow, client_email, client_name,
device_brand, device_model, device_type, device_storage,
amount::text, currency, manual_quote, status, track_token, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	if err := row.Scan(
		&o.ID, &o.DisplayID, &o.Flow, &o.CustomerEmail, &o.CustomerName,
		&o.DeviceBrand, &o.DeviceModel, &o.DeviceType, &o.DeviceStorage,
		&o.Amount, &o.Currency, &o.ManualQuote, &o.Status, &o.TrackToken, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) List(ctx context.Context, status Status, limit int) ([]Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const qAll = `SELECT` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	const qByStatus = `SELECT` + orderColumns + ` FROM orders WHERE status = $2 ORDER BY created_at DESC LIMIT $1`

	q := qAll
	args := []any{limit}
	if status != "" {
		q = qByStatus
		args = append(args, string(status))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Order, error) {
	const q = `SELECT` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) FindByTrackToken(ctx context.Context, token string) (*Order, error) {
	const q = `SELECT` + orderColumns + ` FROM orders WHERE track_token = $1`
	return scanOrder(r.db.QueryRow(ctx, q, token))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Order, error) {
	const q = `SELECT` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, q, id))
}

func GetForUpdateByTrackToken(ctx context.Context, tx pgx.Tx, token string) (*Order, error) {
	const q = `SELECT` + orderColumns + ` FROM orders WHERE track_token = $1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, q, token))
}

func UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status) error {
	const q = `
UPDATE orders
SET status = $1, updated_at = NOW()
WHERE id = $2
`
	_, err := tx.Exec(ctx, q, string(next), id)
	return err
}

type CreateParams struct {
	Flow          pricing.Flow
	CustomerEmail string
	CustomerName  string
	Device        pricing.Device
	Amount        string
	Currency      string
	ManualQuote   bool
	TrackToken    string
}

func (r *Repository) Create(ctx context.Context, p CreateParams) (*Order, error) {
	const q = `
INSERT INTO orders (flow, client_email, client_name, device_brand, device_model, device_type, device_storage,
                    amount, currency, manual_quote, status, track_token)
VALUES ($1, $2, $3, $4, $5, $6, $7, CAST($8 AS numeric), $9, $10, $11, $12)
RETURNING` + orderColumns
	return scanOrder(r.db.QueryRow(ctx, q,
		string(p.Flow), p.CustomerEmail, p.CustomerName,
		p.Device.Brand, p.Device.Model, string(p.Device.Type), p.Device.Storage,
		p.Amount, p.Currency, p.ManualQuote, string(StatusNew), p.TrackToken,
	))
}
